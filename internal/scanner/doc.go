// Package scanner extracts Material Symbols icon usage from template trees.
//
// The scanner is responsible for:
//   - Recursively discovering *.jet.html and *.templ files under a set of roots
//   - Deduplicating and sorting the discovered paths for reproducible counts
//   - Matching icon marker tags and classifying each occurrence as filled
//     or unfilled
//
// The scanner is filesystem-agnostic through the filesystem.Provider
// interface, enabling both production use with the OS filesystem and
// testing with in-memory trees. It is a pure function of the filesystem at
// call time: it performs no writes and keeps no state between runs.
package scanner
