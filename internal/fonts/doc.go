// Package fonts synchronizes local Material Symbols font files with the
// variants a template scan found in use.
//
// For each non-empty variant set the syncer fetches a generated stylesheet
// from the Google Fonts CSS2 endpoint, extracts the woff2 source URL,
// downloads the binary only when its content hash differs from the copy on
// disk, and bumps the cache-busting version marker in the local stylesheet
// after a real update. Hash comparison makes back-to-back runs a no-op.
//
// Variants are processed strictly sequentially, unfilled before filled, and
// a failure in one does not block the other.
package fonts
