package bpcs

import (
	"fmt"

	"github.com/pixelveil-go/bpcs/internal/pool"
)

// Carrier is an in-memory RGB8 raster: Pix holds Width*Height*3 bytes, row
// major, three bytes (R, G, B) per pixel with no padding between rows. It
// is the core's only notion of an image; format-specific decoding and
// encoding (PNG, BMP, TIFF, ...) lives outside this package.
type Carrier struct {
	Width  int
	Height int
	Pix    []byte
}

// validate checks that Pix is sized consistently with Width and Height.
func (c *Carrier) validate() error {
	want := c.Width * c.Height * 3
	if len(c.Pix) != want {
		return fmt.Errorf("bpcs: carrier pixel buffer has %d bytes, want %d for %dx%d RGB8", len(c.Pix), want, c.Width, c.Height)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("bpcs: carrier dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// stride returns the row length in bytes.
func (c *Carrier) stride() int {
	return c.Width * 3
}

// clonePix returns a pooled copy of the carrier's pixel buffer. Extract and
// EstimateCapacity both Gray-code a scratch copy rather than the caller's
// own carrier; borrowing that scratch space from pool keeps repeated
// extracts/estimates over the same carrier size from re-allocating.
// Callers must releasePix the returned slice when done with it.
func (c *Carrier) clonePix() []byte {
	cp := pool.Get(len(c.Pix))
	copy(cp, c.Pix)
	return cp
}

// releasePix returns a slice obtained from clonePix to the pool.
func releasePix(b []byte) {
	pool.Put(b)
}
