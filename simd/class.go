package simd

import (
	"fmt"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// Class is a set of byte values laid out for nibble-based vector lookup.
//
// Row lo (the low nibble of a byte) holds one bit per high nibble: byte
// hi<<4|lo is a member when rows[lo] has bit hi set. The kernels fetch the
// row with a byte shuffle indexed by the data itself and the bit with a
// second shuffle over a fixed 1<<hi table. A shuffle index with bit 7 set
// yields zero, so bytes 0x80-0xFF are never members.
//
// The 16 rows are stored twice so the 256-bit tier can shuffle both of its
// 128-bit halves with one load. A Class is immutable once built and may be
// shared between goroutines.
type Class struct {
	rows [32]byte
}

// ClassOf returns the class of the bytes in chars. Bytes >= 0x80 are ignored.
func ClassOf(chars string) Class {
	var c Class
	for i := 0; i < len(chars); i++ {
		c.add(chars[i])
	}
	return c
}

// ClassFunc returns the class of the bytes 0x00-0x7F for which f reports true.
func ClassFunc(f func(b byte) bool) Class {
	var c Class
	for b := 0; b < 0x80; b++ {
		if f(byte(b)) {
			c.add(byte(b))
		}
	}
	return c
}

// ClassFromRows builds a class from a precomputed 16-entry row bitmap in the
// layout described on Class.
func ClassFromRows(rows [16]byte) Class {
	var c Class
	copy(c.rows[:16], rows[:])
	copy(c.rows[16:], rows[:])
	return c
}

// ClassFromBitSet converts a bitset over byte values into a class.
// It fails with ErrNonASCII if any member is 0x80 or above.
func ClassFromBitSet(set *bitset.BitSet) (Class, error) {
	var c Class
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if i >= 0x80 {
			return Class{}, fmt.Errorf("simd: member %#x: %w", i, ErrNonASCII)
		}
		c.add(byte(i))
	}
	return c, nil
}

func (c *Class) add(b byte) {
	if b >= 0x80 {
		return
	}
	lo, bit := b&0x0f, byte(1)<<(b>>4)
	c.rows[lo] |= bit
	c.rows[16+lo] |= bit
}

// Contains reports whether b is a member of c.
func (c *Class) Contains(b byte) bool {
	return b < 0x80 && c.rows[b&0x0f]&(1<<(b>>4)) != 0
}

// Rows returns the 16-entry row bitmap.
func (c *Class) Rows() [16]byte {
	var rows [16]byte
	copy(rows[:], c.rows[:16])
	return rows
}

// Len returns the number of members.
func (c *Class) Len() int {
	n := 0
	for _, r := range c.rows[:16] {
		n += bits.OnesCount8(r)
	}
	return n
}

// Union returns the class of bytes in c or o.
func (c *Class) Union(o *Class) Class {
	var u Class
	for i := range u.rows {
		u.rows[i] = c.rows[i] | o.rows[i]
	}
	return u
}

// BitSet returns the members of c as a bitset indexed by byte value.
func (c *Class) BitSet() *bitset.BitSet {
	set := bitset.New(256)
	for b := uint(0); b < 0x80; b++ {
		if c.Contains(byte(b)) {
			set.Set(b)
		}
	}
	return set
}

// Span returns the length of the longest prefix of buf whose bytes are all
// members of c. It is the scalar loop to use when Span32 or Span64 report
// that no vector tier is active, and for tails shorter than 32 bytes.
func (c *Class) Span(buf []byte) int {
	for i, b := range buf {
		if !c.Contains(b) {
			return i
		}
	}
	return len(buf)
}

// Common HTTP classes.
var (
	// Token is the RFC 9110 tchar set used by methods and field names.
	Token = ClassOf("!#$%&'*+-.^_`|~" +
		"0123456789" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz")

	// URI is every visible ASCII byte, 0x21-0x7E, as allowed in a request target.
	URI = ClassFunc(func(b byte) bool { return b > ' ' && b < 0x7f })

	// HeaderValue is HTAB, SP and VCHAR. obs-text (0x80-0xFF) stops a span and
	// is left to the caller's scalar loop.
	HeaderValue = ClassFunc(func(b byte) bool { return b == '\t' || (b >= ' ' && b < 0x7f) })

	// Digit is 0-9.
	Digit = ClassOf("0123456789")

	// Whitespace is SP and HTAB.
	Whitespace = ClassOf(" \t")
)
