// Package ui provides implementations of the iconsync.Approver interface.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/megalamo/iconsync/pkg/iconsync"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation before files are rewritten in place.
type InteractiveApprover struct {
	in io.Reader
}

// NewInteractiveApprover creates an InteractiveApprover reading from stdin.
func NewInteractiveApprover() iconsync.Approver {
	return &InteractiveApprover{in: os.Stdin}
}

// NewInteractiveApproverWithReader creates an InteractiveApprover reading
// from in. Primarily useful for tests.
func NewInteractiveApproverWithReader(in io.Reader) iconsync.Approver {
	return &InteractiveApprover{in: in}
}

// RequestApproval prompts the user to confirm with "y".
func (a *InteractiveApprover) RequestApproval(ctx context.Context, summary string) (bool, error) {
	fmt.Fprintf(os.Stderr, "\nAbout to %s\n", summary)
	fmt.Fprintln(os.Stderr, "This modifies files in place.")
	fmt.Fprint(os.Stderr, "\nProceed? [y/N]: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.in)
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if strings.EqualFold(input, "y") || strings.EqualFold(input, "yes") {
			fmt.Fprintln(os.Stderr, "Confirmed. Proceeding...")
			return true, nil
		}
		fmt.Fprintln(os.Stderr, "Operation cancelled.")
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ iconsync.Approver = (*InteractiveApprover)(nil)
