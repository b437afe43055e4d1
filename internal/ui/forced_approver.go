package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/megalamo/iconsync/pkg/iconsync"
)

// ForcedApprover implements the Approver interface for non-interactive
// approval, used when the --force flag is provided.
type ForcedApprover struct{}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover() iconsync.Approver {
	return &ForcedApprover{}
}

// RequestApproval logs the summary and approves immediately.
func (a *ForcedApprover) RequestApproval(ctx context.Context, summary string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(os.Stderr, "--force: proceeding to %s\n", summary)
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ iconsync.Approver = (*ForcedApprover)(nil)
