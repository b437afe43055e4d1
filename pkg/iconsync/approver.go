package iconsync

import "context"

// Approver handles user interaction for approval workflows, particularly for
// operations that rewrite project files in place.
//
// Implementations:
//   - ForcedApprover: logs the summary and approves
//   - InteractiveApprover: prompts the user for confirmation
type Approver interface {
	// RequestApproval asks for confirmation before a mutating operation.
	// The summary describes what is about to change.
	//
	// Returns true if approved, false if denied, and any error that
	// occurred during the approval process.
	RequestApproval(ctx context.Context, summary string) (bool, error)
}
