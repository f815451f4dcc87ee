//go:build amd64 && !noasm

package simd

// findRangesSSE42 is implemented in find_amd64.s. It runs PCMPESTRI over the
// whole 16-byte strides of buf and returns the index of the first byte
// inside ranges, or -1.
//
//go:noescape
func findRangesSSE42(ranges *[16]byte, n int, buf []byte) int

// FindInRanges returns the index of the first byte of buf that falls in r,
// or -1.
//
// Only whole 16-byte strides are examined: bytes in the final
// len(buf)%16 tail are never looked at, so a -1 result says nothing about
// them. When no vector tier is active FindInRanges returns -1 without
// scanning; check Accelerated to tell the two apart.
func FindInRanges(buf []byte, r *Ranges) int {
	if activeTier < SSE42 || len(buf) < 16 {
		return -1
	}
	return findRangesSSE42(&r.pairs, r.n, buf)
}
