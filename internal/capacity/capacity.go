// Package capacity estimates how many payload bytes a carrier can hold at
// a given complexity threshold, without running a full embed.
package capacity

import "github.com/pixelveil-go/bpcs/internal/dynprefix"

// fieldBits is the IV's per-field width, duplicated from ivframe to avoid
// an import (ivframe doesn't otherwise need this package, and this keeps
// capacity a leaf consumer of dynprefix only).
const fieldBits = 32

// planeBits is the number of raw bits in one bit-plane.
const planeBits = 64

// Estimate returns the maximum payload byte count a carrier with
// availablePlanes complex planes can hold at the given threshold. The
// conjugation map's own cost is folded in as an average 1/B planes per
// payload plane, per the closed form derived from the region layout: N =
// floor((A - I - 2) * B / (B + 1)), capacity = 8*N bytes.
//
// The result is advisory and is monotone non-increasing in alphaMin. It is
// conservative rather than exact: the formula leaves at least one plane
// unused, so a payload of the returned size always fits, and the true
// maximum can be slightly larger.
func Estimate(availablePlanes int, alphaMin float64) uint64 {
	prefixLen := dynprefix.PrefixLength(alphaMin)
	ivPlanes := 2 * dynprefix.PlanesNeeded(fieldBits, prefixLen)
	dataBitsPerPlane := planeBits - prefixLen

	if dataBitsPerPlane <= 0 {
		return 0
	}

	usable := availablePlanes - ivPlanes - 2
	if usable <= 0 {
		return 0
	}

	n := (usable * dataBitsPerPlane) / (dataBitsPerPlane + 1)
	if n <= 0 {
		return 0
	}
	return uint64(n) * 8
}
