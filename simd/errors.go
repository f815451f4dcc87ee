package simd

import "errors"

// Errors returned when building classes and ranges or switching tiers.
// Scanning itself never fails.
var (
	// ErrTierUnavailable is returned by SetTier for a tier this build or CPU
	// cannot run.
	ErrTierUnavailable = errors.New("tier not available")

	// ErrNonASCII is returned when a class member is >= 0x80. The nibble
	// tables only cover 0x00-0x7F.
	ErrNonASCII = errors.New("class member outside 0x00-0x7f")

	// ErrRangeCount is returned for an odd number of range bytes or more
	// than MaxRanges pairs.
	ErrRangeCount = errors.New("invalid number of range bytes")

	// ErrRangeOrder is returned for a range whose low bound exceeds its high bound.
	ErrRangeOrder = errors.New("range low bound above high bound")
)
