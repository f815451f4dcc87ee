package httparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kamyuentse/httparse/simd"
)

var allTiers = []simd.Tier{simd.None, simd.SSE42, simd.AVX2}

// eachTier runs fn once per tier this CPU supports, including None.
func eachTier(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	for _, tier := range allTiers {
		t.Run(tier.String(), func(t *testing.T) {
			if !simd.Available(tier) {
				t.Skipf("tier %s not available", tier)
			}
			prev, err := simd.SetTier(tier)
			require.NoError(t, err)
			t.Cleanup(func() {
				_, err := simd.SetTier(prev)
				require.NoError(t, err)
			})
			fn(t)
		})
	}
}
