package httparse

import "github.com/kamyuentse/httparse/internal/debug"

// WindowSize is the number of bytes a Window exposes.
const WindowSize = 8

// Window is an unrolled view of the next 8 unread bytes of a Cursor, for hot
// loops that match short keywords without a bounds check per byte.
//
// The 8 bytes are verified once when the window is opened. Byte consumes
// them in order 0..7, advancing the cursor by one each time; At only peeks.
// While a window is in use the cursor must not be touched through any other
// method, and Extract or Reset invalidate it. Both rules, and the access
// order, are asserted in httparse_debug builds only.
type Window struct {
	c     *Cursor
	b     *[WindowSize]byte
	start int
	n     int
	gen   uint32
}

// OpenWindow returns a window over the next 8 bytes.
//
// It requires 9 unread bytes, pos+8 < len: the byte after the window is
// guaranteed to exist so a parser can always peek at the delimiter that
// follows an 8-byte token. With 8 or fewer unread bytes ok is false.
func (c *Cursor) OpenWindow() (w Window, ok bool) {
	if c.pos+WindowSize >= len(c.buf) {
		return Window{}, false
	}
	return Window{
		c:     c,
		b:     (*[WindowSize]byte)(c.buf[c.pos : c.pos+WindowSize]),
		start: c.pos,
		gen:   c.gen,
	}, true
}

// Byte returns byte k of the window and advances the cursor past it.
// Calls must come in order: Byte(0), Byte(1), ... Byte(7), each at most once.
func (w *Window) Byte(k int) byte {
	debug.Assert(k == w.n, "Window.Byte", "accessor called out of order")
	debug.Assert(w.gen == w.c.gen && w.c.pos == w.start+w.n, "Window.Byte", "cursor used while window open")
	b := w.b[k]
	w.n++
	w.c.pos++
	return b
}

// At returns byte k of the window without consuming anything.
// It panics unless 0 <= k < 8.
func (w *Window) At(k int) byte {
	return w.b[k]
}

// Bytes returns the whole window. The array aliases the cursor's buffer.
func (w *Window) Bytes() *[WindowSize]byte {
	return w.b
}

// Consumed returns how many bytes Byte has consumed.
func (w *Window) Consumed() int {
	return w.n
}
