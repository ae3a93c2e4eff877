// Package steganalysis provides supplemental tools for visually inspecting
// the effect an embed had on a carrier: pixel-difference images and
// per-channel, per-bit-index plane slices. These operate purely on
// bpcs.Carrier values through the core's public surface; none of them are
// needed by Embed or Extract.
package steganalysis

import (
	"fmt"

	"github.com/pixelveil-go/bpcs"
)

// Diff returns the absolute per-channel pixel difference between two
// same-sized carriers.
func Diff(a, b *bpcs.Carrier) (*bpcs.Carrier, error) {
	if err := checkSameDimensions(a, b); err != nil {
		return nil, err
	}
	out := &bpcs.Carrier{Width: a.Width, Height: a.Height, Pix: make([]byte, len(a.Pix))}
	for i := range out.Pix {
		out.Pix[i] = absDiff(a.Pix[i], b.Pix[i])
	}
	return out, nil
}

// Highlight returns an image where any pixel channel that differs between
// a and b is forced to 255 and every unchanged channel is forced to 0,
// making even single-bit changes visible. Channels are handled
// independently, so a pixel that changed in only some channels shows as a
// primary or secondary color rather than white.
func Highlight(a, b *bpcs.Carrier) (*bpcs.Carrier, error) {
	diff, err := Diff(a, b)
	if err != nil {
		return nil, err
	}
	for i, v := range diff.Pix {
		if v > 0 {
			diff.Pix[i] = 255
		}
	}
	return diff, nil
}

// Xor returns the per-channel XOR of two same-sized carriers.
func Xor(a, b *bpcs.Carrier) (*bpcs.Carrier, error) {
	if err := checkSameDimensions(a, b); err != nil {
		return nil, err
	}
	out := &bpcs.Carrier{Width: a.Width, Height: a.Height, Pix: make([]byte, len(a.Pix))}
	for i := range out.Pix {
		out.Pix[i] = a.Pix[i] ^ b.Pix[i]
	}
	return out, nil
}

// PlaneKey identifies one of the 24 single-bit planes a carrier's pixels
// decompose into: one of 3 channels, one of 8 bit positions.
type PlaneKey struct {
	Channel  uint8
	BitIndex uint8
}

// SlicePlanes renders every (channel, bit index) plane of carrier as an
// 8-bit grayscale buffer (0 or 255 per pixel), keyed by PlaneKey. The
// result has 24 entries regardless of carrier content.
func SlicePlanes(carrier *bpcs.Carrier) map[PlaneKey][]byte {
	planes := make(map[PlaneKey][]byte, 24)
	for ch := uint8(0); ch < 3; ch++ {
		for bit := uint8(0); bit < 8; bit++ {
			planes[PlaneKey{Channel: ch, BitIndex: bit}] = make([]byte, carrier.Width*carrier.Height)
		}
	}

	stride := carrier.Width * 3
	for y := 0; y < carrier.Height; y++ {
		for x := 0; x < carrier.Width; x++ {
			for ch := uint8(0); ch < 3; ch++ {
				v := carrier.Pix[y*stride+x*3+int(ch)]
				for bit := uint8(0); bit < 8; bit++ {
					set := (v>>(7-bit))&1 == 1
					val := byte(0)
					if set {
						val = 255
					}
					planes[PlaneKey{Channel: ch, BitIndex: bit}][y*carrier.Width+x] = val
				}
			}
		}
	}
	return planes
}

func checkSameDimensions(a, b *bpcs.Carrier) error {
	if a.Width != b.Width || a.Height != b.Height {
		return fmt.Errorf("steganalysis: dimension mismatch: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	return nil
}

func absDiff(x, y byte) byte {
	if x > y {
		return x - y
	}
	return y - x
}
