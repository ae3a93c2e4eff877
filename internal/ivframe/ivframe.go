// Package ivframe builds and parses the BPCS frame's initialization-vector
// region: two fixed-width length fields (payload plane count N, payload
// remainder bit count R), each serialized through the dynamic-prefix
// scheme, plus the conjugation-map region that rides on the same scheme.
package ivframe

import (
	"fmt"

	"github.com/pixelveil-go/bpcs/internal/bitops"
	"github.com/pixelveil-go/bpcs/internal/bitplane"
	"github.com/pixelveil-go/bpcs/internal/bpcserr"
	"github.com/pixelveil-go/bpcs/internal/dynprefix"
)

// FieldBits is the bit width of each IV length field (N and R).
const FieldBits = 32

// PlaneCount returns the number of planes the IV region occupies for the
// given threshold: two independent 32-bit fields, each through the
// dynamic-prefix scheme.
func PlaneCount(alphaMin float64) int {
	prefixLen := dynprefix.PrefixLength(alphaMin)
	return 2 * dynprefix.PlanesNeeded(FieldBits, prefixLen)
}

// Build serializes (n, r) into IV planes: n's 32-bit big-endian
// representation first, then r's.
func Build(alphaMin float64, n, r uint32) []bitplane.BitPlane {
	var planes []bitplane.BitPlane
	planes = append(planes, dynprefix.BuildPlanes(bitops.UintToBits(n, FieldBits), alphaMin)...)
	planes = append(planes, dynprefix.BuildPlanes(bitops.UintToBits(r, FieldBits), alphaMin)...)
	return planes
}

// Parse recovers (n, r) from the IV planes. It returns *InvalidIVError if r
// exceeds 64, the maximum number of real bits a single message plane can
// hold.
func Parse(planes []bitplane.BitPlane, alphaMin float64) (n, r uint32, err error) {
	prefixLen := dynprefix.PrefixLength(alphaMin)
	fieldPlanes := dynprefix.PlanesNeeded(FieldBits, prefixLen)

	nPlanes := planes[:fieldPlanes]
	rPlanes := planes[fieldPlanes : 2*fieldPlanes]

	nBits := dynprefix.ParsePlanes(nPlanes, alphaMin)[:FieldBits]
	n = bitops.BitsToUint(nBits)

	rBits := dynprefix.ParsePlanes(rPlanes, alphaMin)[:FieldBits]
	r = bitops.BitsToUint(rBits)

	if r > 64 {
		return 0, 0, &bpcserr.InvalidIVError{Reason: fmt.Sprintf("remainder bit count %d exceeds 64", r)}
	}
	return n, r, nil
}

// BuildConjugationMap serializes a conjugation map (one bool per payload
// plane) through the dynamic-prefix scheme.
func BuildConjugationMap(conjMap []bool, alphaMin float64) []bitplane.BitPlane {
	return dynprefix.BuildPlanes(conjMap, alphaMin)
}

// ConjugationMapPlaneCount returns the number of planes the conjugation-map
// region occupies for n payload planes at the given threshold.
func ConjugationMapPlaneCount(alphaMin float64, n uint32) int {
	return dynprefix.PlanesNeeded(int(n), dynprefix.PrefixLength(alphaMin))
}

// ParseConjugationMap recovers the n-bit conjugation map from its planes.
func ParseConjugationMap(planes []bitplane.BitPlane, alphaMin float64, n uint32) []bool {
	bits := dynprefix.ParsePlanes(planes, alphaMin)
	return bits[:n]
}
