//go:build !amd64 || noasm

package simd

// FindInRanges returns the index of the first byte of buf that falls in r,
// or -1.
//
// This build has no string-compare kernel, so it always returns -1 without
// scanning.
func FindInRanges(buf []byte, r *Ranges) int {
	return -1
}
