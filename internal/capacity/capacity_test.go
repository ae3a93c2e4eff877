package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEstimateMonotoneNonIncreasingInAlpha(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		available := rapid.IntRange(0, 100000).Draw(t, "available")
		a1 := rapid.Float64Range(0.01, 0.49).Draw(t, "a1")
		a2 := rapid.Float64Range(a1, 0.5).Draw(t, "a2")

		c1 := Estimate(available, a1)
		c2 := Estimate(available, a2)
		assert.GreaterOrEqual(t, c1, c2)
	})
}

func TestEstimateZeroBelowOverhead(t *testing.T) {
	assert.Equal(t, uint64(0), Estimate(0, 0.3))
	assert.Equal(t, uint64(0), Estimate(5, 0.3))
}

func TestEstimatePositiveForLargeCarrier(t *testing.T) {
	got := Estimate(100000, 0.3)
	assert.Greater(t, got, uint64(0))
	assert.Zero(t, got%8)
}
