//go:build !amd64 || noasm

package simd

// Span32 returns the number of leading bytes of buf[:32] that are members
// of c, and true. buf must hold at least 32 bytes; a shorter buf panics.
//
// This build has no vector kernels: Span32 always returns (0, false) and the
// caller falls back to c.Span or its own loop.
func Span32(buf []byte, c *Class) (int, bool) {
	_ = buf[31]
	return 0, false
}

// Span64 is Span32 over buf[:64]. buf must hold at least 64 bytes.
//
// This build has no vector kernels: Span64 always returns (0, false).
func Span64(buf []byte, c *Class) (int, bool) {
	_ = buf[63]
	return 0, false
}
