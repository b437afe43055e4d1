// Package probe guesses valid pximg thumbnail resize parameters.
//
// It issues a HEAD request for a known profile image under a candidate
// c/<size> path segment; a success status means the resize parameter is
// accepted by the image host.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/megalamo/iconsync/pkg/iconsync"
)

// NormalizeSize expands a bare edge length into a WxH parameter:
// "540" becomes "540x540". Values already containing an "x" pass through.
func NormalizeSize(size string) string {
	if !strings.Contains(size, "x") {
		return size + "x" + size
	}
	return size
}

// Prober checks candidate resize parameters against the image host.
type Prober struct {
	client   *http.Client
	endpoint string
	referer  string
}

// New creates a Prober against the pximg endpoint.
func New() *Prober {
	return NewWithOptions(&http.Client{}, iconsync.ProbeEndpoint, iconsync.ProbeReferer)
}

// NewWithOptions creates a Prober with explicit collaborators, primarily for
// testing. Panics if client is nil or endpoint is empty.
func NewWithOptions(client *http.Client, endpoint, referer string) *Prober {
	if client == nil {
		panic("client cannot be nil")
	}
	if endpoint == "" {
		panic("endpoint cannot be empty")
	}
	return &Prober{
		client:   client,
		endpoint: endpoint,
		referer:  referer,
	}
}

// Try reports whether the host accepts the resize parameter. The size must
// already be normalized. Network failures are returned as errors; a
// non-success status is a valid negative result, not an error.
func (p *Prober) Try(ctx context.Context, size string) (bool, error) {
	url := fmt.Sprintf(p.endpoint, size)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build probe request: %w", err)
	}
	req.Header.Set("Referer", p.referer)
	// Suppress the default Go user agent; the host rejects obvious
	// non-browser signatures but tolerates an absent one
	req.Header.Set("User-Agent", "")

	resp, err := p.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("probe request failed: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode < 400, nil
}
