// Package dynprefix implements the dynamic-prefix scheme: a variable-length
// random header inside a bit-plane that forces the plane's complexity to
// meet a threshold, used to carry the narrow IV and conjugation-map fields
// that are too short on their own to reliably clear alpha_min.
package dynprefix

import (
	"math"
	"math/rand/v2"

	"github.com/pixelveil-go/bpcs/internal/bitplane"
)

const planeBits = bitplane.Size * bitplane.Size // 64

// PrefixLength returns ℓ(alphaMin) = ceil(64 * (1.4*alphaMin + 0.05)).
func PrefixLength(alphaMin float64) int {
	return int(math.Ceil(float64(planeBits) * (1.4*alphaMin + 0.05)))
}

// PlanesNeeded returns the number of prefixed planes required to carry
// nBits data bits, given a prefix length.
func PlanesNeeded(nBits, prefixLen int) int {
	dataBitsPerPlane := planeBits - prefixLen
	return int(math.Ceil(float64(nBits) / float64(dataBitsPerPlane)))
}

// randomBits returns n independent, uniformly random booleans drawn from a
// non-deterministic source. This must never be the caller's seeded
// placement PRNG: reusing that source here would leak key-dependent
// fingerprints into the prefix bits themselves.
func randomBits(n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = rand.IntN(2) == 1
	}
	return bits
}

// buildPlane drains the next (64-prefixLen) bits from data and resamples a
// random prefix until the resulting plane's alpha clears alphaMin.
func buildPlane(data []bool, alphaMin float64, prefixLen int) (bitplane.BitPlane, []bool) {
	dataBits := planeBits - prefixLen
	chunk := data[:dataBits]
	rest := data[dataBits:]

	for {
		bits := make([]bool, 0, planeBits)
		bits = append(bits, randomBits(prefixLen)...)
		bits = append(bits, chunk...)
		p := bitplane.FromBits(bits)
		if p.Alpha() >= alphaMin {
			return p, rest
		}
	}
}

// BuildPlanes wraps bits into a sequence of prefixed planes, each with a
// random ℓ-bit prefix tuned so the plane clears alphaMin, and the
// remaining 64-ℓ bits carrying data. If the final chunk of bits is shorter
// than 64-ℓ, it is padded with random filler so every emitted plane is
// full.
func BuildPlanes(bits []bool, alphaMin float64) []bitplane.BitPlane {
	prefixLen := PrefixLength(alphaMin)
	dataBits := planeBits - prefixLen

	padded := append([]bool(nil), bits...)
	if rem := len(padded) % dataBits; rem != 0 {
		padded = append(padded, randomBits(dataBits-rem)...)
	}

	var planes []bitplane.BitPlane
	for len(padded) > 0 {
		var p bitplane.BitPlane
		p, padded = buildPlane(padded, alphaMin, prefixLen)
		planes = append(planes, p)
	}
	return planes
}

// ParsePlanes recovers the data bits (positions ℓ..63 of each plane, in
// order) from a sequence of prefixed planes built at the given alphaMin.
// Includes any padding filler bits the caller must truncate using the
// known true data-bit length.
func ParsePlanes(planes []bitplane.BitPlane, alphaMin float64) []bool {
	prefixLen := PrefixLength(alphaMin)
	data := make([]bool, 0, len(planes)*(planeBits-prefixLen))
	for _, p := range planes {
		bits := p.ToBools()
		data = append(data, bits[prefixLen:]...)
	}
	return data
}
