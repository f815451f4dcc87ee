package simd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRanges(t *testing.T) {
	r, err := NewRanges('\r', '\r', '\n', '\n', '0', '9')
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())

	for _, b := range []byte("\r\n0459") {
		assert.True(t, r.Contains(b), "%q", b)
	}
	for _, b := range []byte(" /:a\x00\xff") {
		assert.False(t, r.Contains(b), "%q", b)
	}
}

func TestNewRangesErrors(t *testing.T) {
	tests := []struct {
		name  string
		pairs []byte
		want  error
	}{
		{"odd", []byte{'a', 'z', 'A'}, ErrRangeCount},
		{"too many", make([]byte, 2*MaxRanges+2), ErrRangeCount},
		{"reversed", []byte{'z', 'a'}, ErrRangeOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRanges(tt.pairs...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRangesLimits(t *testing.T) {
	r, err := NewRanges()
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains(0))

	full := make([]byte, 2*MaxRanges)
	for i := range MaxRanges {
		full[2*i] = byte('a' + 2*i)
		full[2*i+1] = byte('a' + 2*i)
	}
	r, err = NewRanges(full...)
	require.NoError(t, err)
	assert.Equal(t, MaxRanges, r.Len())
	assert.True(t, r.Contains('o'))
	assert.False(t, r.Contains('b'))
}

func TestMustRanges(t *testing.T) {
	assert.NotPanics(t, func() { MustRanges(0x00, 0xff) })
	assert.Panics(t, func() { MustRanges('b', 'a') })
}
