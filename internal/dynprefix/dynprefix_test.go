package dynprefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPrefixLengths(t *testing.T) {
	// scenario 2 from the spec's testable properties.
	assert.Equal(t, 31, PrefixLength(0.30))
	assert.Equal(t, 22, PrefixLength(0.20))
	assert.Equal(t, 48, PrefixLength(0.50))
}

func TestPlanesNeeded(t *testing.T) {
	assert.Equal(t, 1, PlanesNeeded(32, 31))
	assert.Equal(t, 2, PlanesNeeded(128, 0))
	assert.Equal(t, 3, PlanesNeeded(79, 31))
}

func TestBuildPlanesMeetThreshold(t *testing.T) {
	alphaMin := 0.3
	bits := make([]bool, 40)
	planes := BuildPlanes(bits, alphaMin)
	// ℓ(0.3) = 31 leaves 33 data bits per plane, so 40 bits need 2 planes.
	assert.Len(t, planes, 2)
	assert.GreaterOrEqual(t, planes[0].Alpha(), alphaMin)
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		alphaMin := rapid.Float64Range(0.001, 0.5).Draw(t, "alphaMin")
		n := rapid.IntRange(1, 200).Draw(t, "n")
		bits := rapid.SliceOfN(rapid.Bool(), n, n).Draw(t, "bits")

		planes := BuildPlanes(bits, alphaMin)
		for _, p := range planes {
			assert.GreaterOrEqual(t, p.Alpha(), alphaMin)
		}

		got := ParsePlanes(planes, alphaMin)
		assert.Equal(t, bits, got[:len(bits)])
	})
}
