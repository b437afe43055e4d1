package checksum

import (
	"crypto/md5"
	"encoding/hex"
)

// Calculator is an interface for computing content digests.
// This abstraction allows for different digest algorithms.
type Calculator interface {
	// Sum computes a hex-encoded digest of the content.
	Sum(content []byte) string
}

// MD5 implements Calculator using MD5, matching the fingerprint the asset
// pipeline has always used for font files.
//
// MD5 is a zero-size type and is safe for concurrent use by multiple
// goroutines. Using value semantics eliminates heap allocations.
type MD5 struct{}

// New creates a new MD5 based calculator.
// Returns by value to avoid heap allocation (MD5 is a zero-size type).
func New() MD5 {
	return MD5{}
}

// Sum computes the hex-encoded MD5 digest of content.
func (c MD5) Sum(content []byte) string {
	hash := md5.Sum(content)
	return hex.EncodeToString(hash[:])
}
