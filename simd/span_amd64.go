//go:build amd64 && !noasm

package simd

// Kernels in span_amd64.s. Each one loads 32 or 64 bytes from buf and
// returns how many leading bytes are class members.
//
//go:noescape
func span32SSE(buf *byte, rows *[32]byte) int

//go:noescape
func span64SSE(buf *byte, rows *[32]byte) int

//go:noescape
func span32AVX2(buf *byte, rows *[32]byte) int

//go:noescape
func span64AVX2(buf *byte, rows *[32]byte) int

// Span32 returns the number of leading bytes of buf[:32] that are members
// of c, and true. buf must hold at least 32 bytes; a shorter buf panics.
//
// When no vector tier is active Span32 returns (0, false) without looking
// at buf, and the caller falls back to c.Span or its own loop.
//
// Algorithm (per 16- or 32-byte lane):
//  1. row = shuffle(rows, data), zero for bytes >= 0x80
//  2. bit = shuffle(1<<hi table, data>>4 & 0x0f) & row
//  3. mask = movemask(bit == 0), one bit per non-member byte
//  4. OR a sentinel above bit 31 and count trailing zeros
//
// Example:
//
//	buf := []byte("Content-Type: text/plain\r\n......")
//	if n, ok := simd.Span32(buf, &simd.Token); ok {
//	    // n == 12, the length of "Content-Type"
//	}
func Span32(buf []byte, c *Class) (int, bool) {
	_ = buf[31]
	switch activeTier {
	case AVX2:
		return span32AVX2(&buf[0], &c.rows), true
	case SSE42:
		return span32SSE(&buf[0], &c.rows), true
	}
	return 0, false
}

// Span64 is Span32 over buf[:64]. buf must hold at least 64 bytes.
// A fully matching window yields 64.
func Span64(buf []byte, c *Class) (int, bool) {
	_ = buf[63]
	switch activeTier {
	case AVX2:
		return span64AVX2(&buf[0], &c.rows), true
	case SSE42:
		return span64SSE(&buf[0], &c.rows), true
	}
	return 0, false
}
