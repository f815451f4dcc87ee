package simd

import "fmt"

// MaxRanges is the number of inclusive ranges a Ranges value can hold.
const MaxRanges = 8

// Ranges is a byte class given as up to eight inclusive [lo, hi] pairs,
// packed in the operand format of the SSE4.2 PCMPESTRI instruction in
// ranges mode.
type Ranges struct {
	pairs [16]byte
	n     int // valid bytes in pairs, always even
}

// NewRanges builds a Ranges value from lo, hi pairs:
//
//	r, err := simd.NewRanges('\r', '\r', '\n', '\n', ':', ':')
func NewRanges(pairs ...byte) (Ranges, error) {
	if len(pairs)%2 != 0 || len(pairs) > 2*MaxRanges {
		return Ranges{}, fmt.Errorf("simd: %d range bytes: %w", len(pairs), ErrRangeCount)
	}
	var r Ranges
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i] > pairs[i+1] {
			return Ranges{}, fmt.Errorf("simd: range %#x-%#x: %w", pairs[i], pairs[i+1], ErrRangeOrder)
		}
	}
	r.n = copy(r.pairs[:], pairs)
	return r, nil
}

// MustRanges is like NewRanges but panics on error. It simplifies
// initialization of package-level values.
func MustRanges(pairs ...byte) Ranges {
	r, err := NewRanges(pairs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of ranges.
func (r *Ranges) Len() int {
	return r.n / 2
}

// Contains reports whether b falls in any of the ranges.
func (r *Ranges) Contains(b byte) bool {
	for i := 0; i < r.n; i += 2 {
		if b >= r.pairs[i] && b <= r.pairs[i+1] {
			return true
		}
	}
	return false
}

