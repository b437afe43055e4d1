// Package filesystem abstracts file access for the scanner and rewrite tools.
//
// The Provider interface decouples directory traversal from the OS, enabling
// both production use with the real filesystem and tests against an
// in-memory tree. Traversal order over the in-memory tree is sorted so that
// tests observe the same deterministic behavior the tools guarantee on disk.
package filesystem
