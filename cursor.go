// Package httparse provides the byte-level scanning core of an HTTP/1.x
// parser: a zero-copy cursor over a borrowed buffer, an unrolled 8-byte
// lookahead window, and bulk skipping backed by the vector kernels in the
// simd package.
//
// The grammar (request line, header fields, framing) lives in the caller.
// The caller drives a Cursor, lets it skip runs of token bytes in bulk, and
// cuts tokens out of the buffer with Extract once it finds a boundary:
//
//	c := httparse.NewCursor(buf)
//	c.SkipClass(&simd.Token)
//	if b, ok := c.Peek(); ok && b == ' ' {
//	    c.Advance()
//	    method := c.Extract(1) // "GET", without the space
//	    _ = method
//	}
//
// Nothing here allocates or copies. Every slice returned aliases the buffer
// given to NewCursor, which must not be modified while those slices are in use.
package httparse

import (
	"iter"

	"github.com/kamyuentse/httparse/internal/debug"
	"github.com/kamyuentse/httparse/simd"
)

// Cursor is a forward-only reader over a borrowed byte slice.
//
// Invariant: 0 <= pos <= len(buf). pos only moves back through Extract, which
// also drops the consumed bytes from buf.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	buf []byte
	pos int
	gen uint32 // bumped by Extract, checked by open windows
}

// NewCursor returns a cursor at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Reset points the cursor at the start of buf, reusing c.
func (c *Cursor) Reset(buf []byte) {
	c.buf = buf
	c.pos = 0
	c.gen++
}

// Pos returns the read position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the length of the buffer, including bytes already read.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Peek returns the byte at the read position without consuming it.
// ok is false at the end of the buffer.
func (c *Cursor) Peek() (b byte, ok bool) {
	if c.pos < len(c.buf) {
		return c.buf[c.pos], true
	}
	return 0, false
}

// Advance consumes one byte. It does not check that a byte is left; the
// caller must have seen one through Peek, Len or Remaining. Advancing past
// the end makes the next Extract panic.
func (c *Cursor) Advance() {
	debug.Assert(c.pos < len(c.buf), "Advance", "no bytes left")
	c.pos++
}

// Next consumes and returns the byte at the read position.
// ok is false at the end of the buffer.
func (c *Cursor) Next() (b byte, ok bool) {
	if c.pos < len(c.buf) {
		b = c.buf[c.pos]
		c.pos++
		return b, true
	}
	return 0, false
}

// All returns an iterator over the unread bytes. Each byte yielded is
// consumed, so breaking out of the loop leaves the cursor just past the last
// byte seen. The sequence ends at the end of the buffer and cannot be
// restarted.
func (c *Cursor) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for c.pos < len(c.buf) {
			b := c.buf[c.pos]
			c.pos++
			if !yield(b) {
				return
			}
		}
	}
}

// Extract splits the buffer at the read position. It returns the consumed
// bytes minus the last skip of them, buf[:pos-skip], and continues with
// buf[pos:] as the new buffer, read position 0.
//
// The head shares storage with the original buffer; its capacity is capped
// so appending to it cannot overwrite the tail. Extract panics if skip is
// negative or larger than Pos. It invalidates any open Window.
func (c *Cursor) Extract(skip int) []byte {
	if skip < 0 || skip > c.pos {
		panic("httparse: Extract skip out of range")
	}
	end := c.pos - skip
	head := c.buf[:end:end]
	c.buf = c.buf[c.pos:]
	c.pos = 0
	c.gen++
	return head
}

// Slice is Extract(0): it returns every consumed byte.
func (c *Cursor) Slice() []byte {
	return c.Extract(0)
}

// SkipClass consumes the run of bytes at the read position that belong to
// class and returns its length.
//
// While at least 64 (then 32) bytes remain it steps with simd.Span64 and
// simd.Span32; the tail, and everything when no vector tier is active, goes
// through the scalar class.Span.
func (c *Cursor) SkipClass(class *simd.Class) int {
	start := c.pos
	for len(c.buf)-c.pos >= 64 {
		n, ok := simd.Span64(c.buf[c.pos:], class)
		if !ok {
			break
		}
		c.pos += n
		if n < 64 {
			return c.pos - start
		}
	}
	if len(c.buf)-c.pos >= 32 {
		if n, ok := simd.Span32(c.buf[c.pos:], class); ok {
			c.pos += n
			if n < 32 {
				return c.pos - start
			}
		}
	}
	c.pos += class.Span(c.buf[c.pos:])
	return c.pos - start
}

// FindInRanges looks for the first unread byte that falls in r. On a hit it
// consumes everything up to and including that byte and returns it.
//
// The search runs in 16-byte strides and never looks at a final partial
// stride. On a miss ok is false and the read position is only known to be
// at or past the start of the last stride scanned; callers that need the
// remaining bytes checked must do so themselves with Peek and Advance.
//
// Without the SSE4.2 tier FindInRanges returns (0, false) at once, without
// scanning and without moving. This is the expected degraded behavior, not
// an error: the caller then scans byte by byte.
func (c *Cursor) FindInRanges(r *simd.Ranges) (b byte, ok bool) {
	if !simd.Accelerated() {
		return 0, false
	}
	rest := c.buf[c.pos:]
	i := simd.FindInRanges(rest, r)
	if i < 0 {
		c.pos += len(rest) &^ 15
		return 0, false
	}
	c.pos += i + 1
	return rest[i], true
}

// MatchKeyword reports which of k's keywords starts at the read position and
// consumes it. It returns -1 and false, without moving, when none does.
func (c *Cursor) MatchKeyword(k *Keywords) (int, bool) {
	id, n, ok := k.Match(c.buf[c.pos:])
	if !ok {
		return -1, false
	}
	c.pos += n
	return id, true
}
