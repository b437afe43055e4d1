package fonts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/megalamo/iconsync/internal/checksum"
	"github.com/megalamo/iconsync/pkg/iconsync"
)

// fontURLPattern extracts the first https URL from a src: url(...)
// declaration in the fetched stylesheet.
var fontURLPattern = regexp.MustCompile(`src:\s*url\((https://[^)]+)\)`)

// Syncer downloads font files for the icon variants found by the scanner.
type Syncer struct {
	client     *http.Client
	calculator checksum.Calculator
	logger     iconsync.Logger
	endpoint   string
	userAgent  string
}

// New creates a Syncer with the default HTTP client and endpoints.
// Panics if logger is nil.
func New(logger iconsync.Logger) *Syncer {
	return NewWithOptions(logger, &http.Client{}, checksum.New(), iconsync.StylesheetEndpoint)
}

// NewWithOptions creates a Syncer with explicit collaborators.
// This is primarily useful for testing against an httptest server.
// Panics if any argument is nil or endpoint is empty.
func NewWithOptions(logger iconsync.Logger, client *http.Client, calculator checksum.Calculator, endpoint string) *Syncer {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if client == nil {
		panic("client cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if endpoint == "" {
		panic("endpoint cannot be empty")
	}
	return &Syncer{
		client:     client,
		calculator: calculator,
		logger:     logger,
		endpoint:   endpoint,
		userAgent:  iconsync.PinnedUserAgent,
	}
}

// Sync processes both variants in order, unfilled first. A failed variant is
// reported and does not block its sibling; the errors of all failed variants
// are joined into the return value. Empty variant sets are skipped.
func (s *Syncer) Sync(ctx context.Context, result iconsync.ScanResult, cfg iconsync.SyncConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.StylesheetPath != "" && (len(result.Unfilled) > 0 || len(result.Filled) > 0) {
		if _, err := os.Stat(cfg.StylesheetPath); err != nil {
			s.logger.Warn("stylesheet %s not found; version bumping will be skipped", cfg.StylesheetPath)
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = s.userAgent
	}

	var errs []error
	for _, variant := range iconsync.Variants {
		set := result.Set(variant)
		if len(set) == 0 {
			continue
		}
		if err := s.syncVariant(ctx, variant, set, cfg, userAgent); err != nil {
			s.logger.Error("%s sync failed: %v", variant, err)
			errs = append(errs, fmt.Errorf("%s: %w", variant, err))
		}
	}
	return errors.Join(errs...)
}

// syncVariant runs the fetch/extract/download/bump sequence for one variant.
// Missing font URLs and missing version markers are soft skips, not errors.
func (s *Syncer) syncVariant(ctx context.Context, variant iconsync.Variant, set iconsync.IconSet, cfg iconsync.SyncConfig, userAgent string) error {
	css, err := s.fetchStylesheet(ctx, variant, set.Sorted(), userAgent)
	if err != nil {
		return err
	}

	fontURL, ok := extractFontURL(css)
	if !ok {
		s.logger.Warn("%s for %s icons", iconsync.ErrFontURLNotFound, variant)
		return nil
	}
	s.logger.Verbose("%s font URL: %s", variant, fontURL)

	dest := filepath.Join(cfg.FontsDir, variant.FontFileName())
	updated, err := s.downloadIfUpdated(ctx, fontURL, dest)
	if err != nil {
		return err
	}
	if !updated || cfg.StylesheetPath == "" {
		return nil
	}

	if _, err := os.Stat(cfg.StylesheetPath); err != nil {
		s.logger.Warn("skipped version bump for %s because %s was not found", variant.FontFileName(), cfg.StylesheetPath)
		return nil
	}

	from, to, err := BumpVersion(cfg.StylesheetPath, variant)
	if errors.Is(err, iconsync.ErrVersionTagNotFound) {
		s.logger.Warn("no version tag to bump for %s icons in %s", variant, cfg.StylesheetPath)
		return nil
	}
	if err != nil {
		return err
	}
	s.logger.Info("Bumped version in %s for %s icons: %d -> %d", cfg.StylesheetPath, variant, from, to)
	return nil
}

// fetchStylesheet requests the generated CSS for the sorted icon names.
// The pinned browser user agent is required: the endpoint serves woff2
// source declarations only to browser-like clients.
func (s *Syncer) fetchStylesheet(ctx context.Context, variant iconsync.Variant, names []string, userAgent string) (string, error) {
	endpoint := fmt.Sprintf(s.endpoint, variant.FillFlag(), strings.Join(names, ","))

	header := http.Header{}
	header.Set("User-Agent", userAgent)
	header.Set("Accept", "text/css")

	body, err := s.fetch(ctx, endpoint, header)
	if err != nil {
		return "", fmt.Errorf("stylesheet request failed: %w", err)
	}
	return string(body), nil
}

// fetch issues a single GET and reads the full body. Failures surface
// immediately; the caller decides whether the variant or the run dies.
func (s *Syncer) fetch(ctx context.Context, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("server returned %s: %w", resp.Status, iconsync.ErrRequestFailed)
	}

	return io.ReadAll(resp.Body)
}

// extractFontURL returns the first font source URL in the stylesheet.
func extractFontURL(css string) (string, bool) {
	match := fontURLPattern.FindStringSubmatch(css)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// downloadIfUpdated fetches the binary at url and writes it to dest only if
// its content differs from the existing file. Returns true when the file was
// created or replaced.
func (s *Syncer) downloadIfUpdated(ctx context.Context, url, dest string) (bool, error) {
	content, err := s.fetch(ctx, url, nil)
	if err != nil {
		return false, fmt.Errorf("font download failed: %w", err)
	}

	newHash := s.calculator.Sum(content)
	if existing, err := os.ReadFile(dest); err == nil {
		if s.calculator.Sum(existing) == newHash {
			s.logger.Info("%s is already up to date.", filepath.Base(dest))
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, fmt.Errorf("failed to create fonts directory: %w", err)
	}

	// Write to a unique temp file first so a failed write never leaves a
	// truncated font behind
	tmp := dest + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return false, fmt.Errorf("failed to write font file: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return false, fmt.Errorf("failed to replace font file: %w", err)
	}

	s.logger.Info("Downloaded new font file: %s", dest)
	return true, nil
}
