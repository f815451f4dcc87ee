// Package simd provides the vectorized scanning kernels behind the httparse
// cursor: character-class span matching and range-based byte search.
//
// Kernels exist for two x86-64 tiers. The SSE4.2 tier works on 16-byte lanes
// (PSHUFB from SSSE3 plus PCMPESTRI from SSE4.2), the AVX2 tier on 32-byte
// lanes. The best tier the CPU supports is selected once at package
// initialization. Builds for other architectures, or amd64 builds with the
// noasm tag, have no tier at all: the accelerated entry points then report
// that they did nothing and the caller runs its own scalar loop.
//
// The environment variable HTTPARSE_SIMD ("none", "sse42", "avx2") overrides
// the automatic choice when the requested tier is available.
package simd

import (
	"fmt"
	"os"
	"strings"
)

// EnvTier names the environment variable that overrides tier selection.
const EnvTier = "HTTPARSE_SIMD"

// Tier identifies a set of vector instructions the kernels can use.
// Tiers are ordered: a higher tier implies every lower one.
type Tier uint8

const (
	// None means no vector kernels are used.
	None Tier = iota
	// SSE42 is x86-64 SSSE3 + SSE4.2 (128-bit lanes).
	SSE42
	// AVX2 is x86-64 AVX2 (256-bit lanes).
	AVX2
)

// String returns the lower-case tier name.
func (t Tier) String() string {
	switch t {
	case None:
		return "none"
	case SSE42:
		return "sse42"
	case AVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// ParseTier parses a tier name as produced by Tier.String.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "generic":
		return None, true
	case "sse42", "sse4.2":
		return SSE42, true
	case "avx2":
		return AVX2, true
	default:
		return None, false
	}
}

// Package-level state, written by init and SetTier only.
var (
	activeTier  Tier
	hasOverride bool

	// CPU feature flags, filled by the platform-specific detectCPU.
	hasSSE42 bool // SSE4.2 and SSSE3
	hasAVX2  bool // AVX2, implies hasSSE42
)

func init() {
	detectCPU()
	initTier(os.Getenv(EnvTier))
}

func initTier(override string) {
	hasOverride = false
	if override != "" {
		if t, ok := ParseTier(override); ok && Available(t) {
			hasOverride = true
			activeTier = t
			return
		}
	}
	activeTier = bestTier()
}

func bestTier() Tier {
	if hasAVX2 {
		return AVX2
	}
	if hasSSE42 {
		return SSE42
	}
	return None
}

// Available reports whether this build and CPU can run tier t.
func Available(t Tier) bool {
	switch t {
	case None:
		return true
	case SSE42:
		return hasSSE42
	case AVX2:
		return hasAVX2
	default:
		return false
	}
}

// ActiveTier returns the tier the kernels currently dispatch to.
func ActiveTier() Tier {
	return activeTier
}

// Accelerated reports whether any vector tier is active. When it is false,
// Span32, Span64 and FindInRanges do no work.
func Accelerated() bool {
	return activeTier != None
}

// IsOverridden reports whether HTTPARSE_SIMD selected the active tier.
func IsOverridden() bool {
	return hasOverride
}

// SetTier switches the active tier and returns the previous one.
//
// It exists for tests and benchmarks that need to exercise a specific tier,
// including None. It must not be called while other goroutines are scanning.
func SetTier(t Tier) (Tier, error) {
	if !Available(t) {
		return activeTier, fmt.Errorf("simd: %w: %s", ErrTierUnavailable, t)
	}
	prev := activeTier
	activeTier = t
	return prev, nil
}
