package bpcs

import (
	"fmt"

	"github.com/pixelveil-go/bpcs/internal/bitplane"
	"github.com/pixelveil-go/bpcs/internal/graycode"
	"github.com/pixelveil-go/bpcs/internal/ivframe"
	"github.com/pixelveil-go/bpcs/internal/planeselect"
)

// Extract recovers the payload previously hidden in carrier by [Embed]
// with the same alphaMin and key. carrier is read only; Extract works
// against a private copy of its pixel buffer.
func Extract(carrier *Carrier, alphaMin float64, key [32]byte) ([]byte, error) {
	if err := carrier.validate(); err != nil {
		return nil, err
	}
	if alphaMin < 0 || alphaMin > 0.5 {
		return nil, fmt.Errorf("bpcs: alphaMin must be in [0, 0.5], got %v", alphaMin)
	}

	pix := carrier.clonePix()
	defer releasePix(pix)
	graycode.Encode(pix)

	view := bitplane.View{Pix: pix, Stride: carrier.stride()}
	byBit := planeselect.CollectComplex(view, carrier.Width, carrier.Height, alphaMin)
	selector := planeselect.New(byBit, key)

	ivCoords, err := selector.SelectN(ivframe.PlaneCount(alphaMin))
	if err != nil {
		return nil, err
	}
	ivPlanes := readPlanes(view, ivCoords)
	n, r, err := ivframe.Parse(ivPlanes, alphaMin)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &InvalidIVError{Reason: "payload plane count is zero"}
	}

	conjCoords, err := selector.SelectN(ivframe.ConjugationMapPlaneCount(alphaMin, n))
	if err != nil {
		return nil, err
	}
	conjPlanes := readPlanes(view, conjCoords)
	conjugated := ivframe.ParseConjugationMap(conjPlanes, alphaMin, n)

	payloadCoords, err := selector.SelectN(int(n))
	if err != nil {
		return nil, err
	}
	payloadPlanes := readPlanes(view, payloadCoords)

	out := make([]byte, 0, int(n)*8)
	for i, plane := range payloadPlanes {
		if conjugated[i] {
			plane.Conjugate()
		}
		bytes := plane.ToBytes()
		out = append(out, bytes[:]...)
	}

	total := int(n-1)*8 + int(r/8)
	if total < 0 || total > len(out) {
		return nil, &InvalidIVError{Reason: fmt.Sprintf("payload length %d inconsistent with %d recovered planes", total, len(payloadPlanes))}
	}
	return out[:total], nil
}

func readPlanes(view bitplane.View, coords []planeselect.Coord) []bitplane.BitPlane {
	planes := make([]bitplane.BitPlane, len(coords))
	for i, c := range coords {
		planes[i] = bitplane.FromView(view, c.X, c.Y, c.Channel, c.BitIndex)
	}
	return planes
}
