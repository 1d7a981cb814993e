// Package hash wraps xxHash64 for group fingerprints and checkpoint checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// String computes the xxHash64 of s without copying it.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}
