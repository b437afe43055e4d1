package iconsync

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrUsage indicates the command line was invoked without required
	// arguments or with invalid flags.
	ErrUsage = errors.New("invalid invocation")

	// ErrDirectoryNotFound indicates a required directory is missing.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrRequestFailed indicates a remote request failed or returned a
	// non-success status.
	ErrRequestFailed = errors.New("request failed")

	// ErrFontURLNotFound indicates the fetched stylesheet carried no
	// src: url(...) declaration. Treated as a soft skip per variant.
	ErrFontURLNotFound = errors.New("font URL not found")

	// ErrVersionTagNotFound indicates the stylesheet has no woff2?v=N marker
	// for the variant. Treated as a soft skip.
	ErrVersionTagNotFound = errors.New("no version tag to bump")

	// ErrRewriteDeclined indicates the user denied approval for the
	// in-place rewrite.
	ErrRewriteDeclined = errors.New("rewrite declined")
)

// ExitCodeForError returns the process exit code for an error.
// Returns ExitSuccess (0) for nil and ExitFailure (1) otherwise; panics are
// handled separately in main with ExitPanic.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
