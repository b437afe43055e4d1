// Package checksum provides content hashing for downloaded binary assets.
//
// The font syncer compares the digest of freshly downloaded bytes against the
// digest of the copy already on disk; identical digests mean no write and no
// stylesheet version bump. MD5 is used as a cheap content fingerprint, not as
// a security primitive.
//
// # Thread Safety
//
// MD5 is safe for concurrent use by multiple goroutines.
package checksum
