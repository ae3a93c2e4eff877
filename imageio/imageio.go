// Package imageio converts between on-disk lossless image formats and the
// raw RGB8 buffer the bpcs core operates on. It decodes whatever format
// image.Image naturally exposes and re-encodes to PNG, BMP, or
// uncompressed TIFF, all of which round-trip pixels exactly.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/pixelveil-go/bpcs"
)

// Format selects the container Encode writes.
type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

// Decode reads a PNG, BMP, or TIFF image from r and returns it as a
// bpcs.Carrier. Any decoded color model is converted to RGB8, dropping
// alpha (BPCS operates on the three color channels only).
func Decode(r io.Reader) (*bpcs.Carrier, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decoding image: %w", err)
	}
	return fromImage(img), nil
}

// fromImage converts any image.Image to a tightly packed RGB8 Carrier.
func fromImage(img image.Image) *bpcs.Carrier {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pix := make([]byte, width*height*3)

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect == bounds {
		di := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			si := nrgba.PixOffset(bounds.Min.X, y)
			for x := 0; x < width; x++ {
				pix[di] = nrgba.Pix[si]
				pix[di+1] = nrgba.Pix[si+1]
				pix[di+2] = nrgba.Pix[si+2]
				di += 3
				si += 4
			}
		}
		return &bpcs.Carrier{Width: width, Height: height, Pix: pix}
	}

	di := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pix[di] = byte(r >> 8)
			pix[di+1] = byte(g >> 8)
			pix[di+2] = byte(b >> 8)
			di += 3
		}
	}
	return &bpcs.Carrier{Width: width, Height: height, Pix: pix}
}

// toImage builds an *image.NRGBA view over a Carrier's pixel buffer for
// encoders that expect an image.Image.
func toImage(c *bpcs.Carrier) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	si := 0
	for y := 0; y < c.Height; y++ {
		di := img.PixOffset(0, y)
		for x := 0; x < c.Width; x++ {
			img.Pix[di] = c.Pix[si]
			img.Pix[di+1] = c.Pix[si+1]
			img.Pix[di+2] = c.Pix[si+2]
			img.Pix[di+3] = 0xff
			di += 4
			si += 3
		}
	}
	return img
}

// Encode writes carrier to w in the given format.
func Encode(w io.Writer, carrier *bpcs.Carrier, format Format) error {
	img := toImage(carrier)

	switch format {
	case PNG:
		enc := &png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encoding PNG: %w", err)
		}
	case BMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encoding BMP: %w", err)
		}
	case TIFF:
		opt := &tiff.Options{Compression: tiff.Uncompressed}
		if err := tiff.Encode(w, img, opt); err != nil {
			return fmt.Errorf("imageio: encoding TIFF: %w", err)
		}
	default:
		return fmt.Errorf("imageio: unknown format %d", format)
	}
	return nil
}

func init() {
	// Registered so image.Decode (used by Decode above) recognizes BMP and
	// TIFF in addition to PNG, which the image/png import registers.
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
}
