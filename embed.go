package bpcs

import (
	"bytes"
	"fmt"

	"github.com/pixelveil-go/bpcs/internal/bitplane"
	"github.com/pixelveil-go/bpcs/internal/graycode"
	"github.com/pixelveil-go/bpcs/internal/ivframe"
	"github.com/pixelveil-go/bpcs/internal/msgplane"
	"github.com/pixelveil-go/bpcs/internal/planeselect"
)

// Embed hides data inside carrier in place, using the BPCS scheme: carrier
// is Gray-coded, its complex bit-planes at alphaMin are enumerated and a
// key-seeded selector chooses disjoint coordinates for the IV, the
// conjugation map, and the payload, and finally the carrier is
// inverse-Gray-coded. On success carrier's Pix holds the stego image; on
// error carrier is left in an indeterminate state and should be discarded
// in favor of a retained original.
//
// alphaMin must be in [0, 0.5]; identical alphaMin and key values are
// required to extract the same data back out.
func Embed(carrier *Carrier, data []byte, alphaMin float64, key [32]byte) error {
	if err := carrier.validate(); err != nil {
		return err
	}
	if alphaMin < 0 || alphaMin > 0.5 {
		return fmt.Errorf("bpcs: alphaMin must be in [0, 0.5], got %v", alphaMin)
	}
	if len(data) == 0 {
		return fmt.Errorf("bpcs: data must not be empty")
	}

	n := (len(data) + 7) / 8
	r := (len(data) * 8) % 64
	if r == 0 {
		r = 64
	}

	graycode.Encode(carrier.Pix)

	view := bitplane.View{Pix: carrier.Pix, Stride: carrier.stride()}
	byBit := planeselect.CollectComplex(view, carrier.Width, carrier.Height, alphaMin)
	selector := planeselect.New(byBit, key)

	ivCoords, err := selector.SelectN(ivframe.PlaneCount(alphaMin))
	if err != nil {
		return err
	}
	conjCoords, err := selector.SelectN(ivframe.ConjugationMapPlaneCount(alphaMin, uint32(n)))
	if err != nil {
		return err
	}
	payloadCoords, err := selector.SelectN(n)
	if err != nil {
		return err
	}

	ivPlanes := ivframe.Build(alphaMin, uint32(n), uint32(r))
	for i, plane := range ivPlanes {
		plane.WriteTo(view, ivCoords[i].X, ivCoords[i].Y, ivCoords[i].Channel, ivCoords[i].BitIndex)
	}

	payloadPlanes, conjugated, _, err := msgplane.Produce(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("bpcs: building payload planes: %w", err)
	}
	if len(payloadPlanes) != n {
		panic(fmt.Sprintf("bpcs: message producer emitted %d planes, expected %d", len(payloadPlanes), n))
	}
	for i, plane := range payloadPlanes {
		plane.WriteTo(view, payloadCoords[i].X, payloadCoords[i].Y, payloadCoords[i].Channel, payloadCoords[i].BitIndex)
	}

	conjPlanes := ivframe.BuildConjugationMap(conjugated, alphaMin)
	for i, plane := range conjPlanes {
		plane.WriteTo(view, conjCoords[i].X, conjCoords[i].Y, conjCoords[i].Channel, conjCoords[i].BitIndex)
	}

	graycode.Decode(carrier.Pix)
	return nil
}
