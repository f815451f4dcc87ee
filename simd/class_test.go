package simd

import (
	"errors"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassOf(t *testing.T) {
	c := ClassOf("abc:\x00\x7f")

	for _, b := range []byte("abc:\x00\x7f") {
		assert.True(t, c.Contains(b), "%#x", b)
	}
	for _, b := range []byte("dA;\x01\x80\xff") {
		assert.False(t, c.Contains(b), "%#x", b)
	}
	assert.Equal(t, 6, c.Len())
}

func TestClassIgnoresHighBytes(t *testing.T) {
	c := ClassOf("\x80\xc3\xff")
	assert.Equal(t, 0, c.Len())
	for b := 0x80; b <= 0xff; b++ {
		assert.False(t, c.Contains(byte(b)))
	}

	all := ClassFunc(func(byte) bool { return true })
	assert.Equal(t, 128, all.Len())
	assert.False(t, all.Contains(0x80))
}

func TestClassFromRows(t *testing.T) {
	// Row 1 (low nibble 1), bit 4 (high nibble 4): only 0x41.
	c := ClassFromRows([16]byte{0x00, 0x10})
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Contains('A'))
	assert.False(t, c.Contains('B'))
	assert.False(t, c.Contains(0x01))
	assert.False(t, c.Contains(0xc1))

	assert.Equal(t, [16]byte{0x00, 0x10}, c.Rows())
	assert.Equal(t, c.rows[:16], c.rows[16:], "rows are replicated for 256-bit lanes")
}

func TestClassRowsLayout(t *testing.T) {
	c := ClassOf("B")
	rows := c.Rows()
	assert.Equal(t, byte(0x10), rows[2])

	same := ClassFromRows(rows)
	assert.Equal(t, c, same)
}

func TestClassUnion(t *testing.T) {
	a := ClassOf("ab")
	b := ClassOf("bc")
	u := a.Union(&b)

	assert.Equal(t, 3, u.Len())
	for _, ch := range []byte("abc") {
		assert.True(t, u.Contains(ch))
	}
	assert.Equal(t, u.rows[:16], u.rows[16:])
}

func TestClassBitSet(t *testing.T) {
	set := Token.BitSet()
	assert.Equal(t, uint(Token.Len()), set.Count())
	assert.True(t, set.Test('a'))
	assert.False(t, set.Test(':'))

	back, err := ClassFromBitSet(set)
	require.NoError(t, err)
	assert.Equal(t, Token, back)
}

func TestClassFromBitSetNonASCII(t *testing.T) {
	set := bitset.New(256)
	set.Set('a').Set(0x80)

	_, err := ClassFromBitSet(set)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonASCII))
}

func TestPredefinedClasses(t *testing.T) {
	tests := []struct {
		name  string
		class *Class
		in    string
		out   string
	}{
		{"token", &Token, "!#$%&'*+-.^_`|~09AZaz", " \t\"(),/:;<=>?@[\\]{}\x7f"},
		{"uri", &URI, "/?#[]@!$&'()*+,;=%:-._~aZ09\"<>", " \t\r\n\x7f\x00"},
		{"header value", &HeaderValue, "\t !~azAZ09:;", "\r\n\x00\x7f"},
		{"digit", &Digit, "0123456789", "/:aA "},
		{"whitespace", &Whitespace, " \t", "\r\n\v\f_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.in); i++ {
				assert.True(t, tt.class.Contains(tt.in[i]), "%q should be a member", tt.in[i])
			}
			for i := 0; i < len(tt.out); i++ {
				assert.False(t, tt.class.Contains(tt.out[i]), "%q should not be a member", tt.out[i])
			}
		})
	}

	assert.Equal(t, 77, Token.Len())
	assert.Equal(t, 94, URI.Len())
	assert.Equal(t, 96, HeaderValue.Len())
}

func TestClassSpan(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{":", 0},
		{"Host", 4},
		{"Host: example.com", 4},
		{"X-Forwarded-For:", 15},
		{"caf\xc3\xa9", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Token.Span([]byte(tt.in)), "%q", tt.in)
	}
}
