package bpcs

import (
	"github.com/pixelveil-go/bpcs/internal/bitplane"
	"github.com/pixelveil-go/bpcs/internal/capacity"
	"github.com/pixelveil-go/bpcs/internal/graycode"
	"github.com/pixelveil-go/bpcs/internal/planeselect"
)

// EstimateCapacity reports the advisory maximum payload byte count carrier
// can hold at alphaMin, without performing a full embed. The result is
// monotone non-increasing in alphaMin.
func EstimateCapacity(carrier *Carrier, alphaMin float64) uint64 {
	if err := carrier.validate(); err != nil {
		return 0
	}
	pix := carrier.clonePix()
	defer releasePix(pix)
	graycode.Encode(pix)

	view := bitplane.View{Pix: pix, Stride: carrier.stride()}
	byBit := planeselect.CollectComplex(view, carrier.Width, carrier.Height, alphaMin)

	available := 0
	for _, coords := range byBit {
		available += len(coords)
	}
	return capacity.Estimate(available, alphaMin)
}
