// Package planeiter lazily enumerates every 8x8 bit-plane of a carrier,
// indexed by (block x, block y, channel, bit index). Trailing pixels
// outside full 8-pixel blocks are never visited.
package planeiter

import "github.com/pixelveil-go/bpcs/internal/bitplane"

// Coord identifies one bit-plane: the pixel coordinates of its block's
// top-left corner (both multiples of 8), the RGB channel (0,1,2), and the
// bit index (0 = MSB .. 7 = LSB).
type Coord struct {
	X, Y     int
	Channel  uint8
	BitIndex uint8
}

// Cursor is a stateful, lazy enumerator over a carrier's bit-planes. The
// traversal order is block-x, then block-y, then channel, then bit index;
// callers that only need the complex-plane *set* (as the plane selector
// does) don't depend on this order, but it is otherwise the natural
// Cartesian-product order the spec describes.
type Cursor struct {
	view             bitplane.View
	blocksX, blocksY int
	bx, by           int
	channel          uint8
	bitIndex         uint8
	done             bool
}

// New creates a Cursor over width x height pixels of the given view. Only
// the region covered by full 8x8 blocks participates.
func New(view bitplane.View, width, height int) *Cursor {
	return &Cursor{
		view:    view,
		blocksX: width / bitplane.Size,
		blocksY: height / bitplane.Size,
	}
}

// Next advances the cursor and returns the next (coord, plane) pair, or
// ok=false once every plane has been visited.
func (c *Cursor) Next() (Coord, bitplane.BitPlane, bool) {
	if c.done || c.blocksX == 0 || c.blocksY == 0 {
		return Coord{}, bitplane.BitPlane{}, false
	}

	coord := Coord{
		X:        c.bx * bitplane.Size,
		Y:        c.by * bitplane.Size,
		Channel:  c.channel,
		BitIndex: c.bitIndex,
	}
	plane := bitplane.FromView(c.view, coord.X, coord.Y, coord.Channel, coord.BitIndex)

	c.advance()
	return coord, plane, true
}

func (c *Cursor) advance() {
	c.bitIndex++
	if c.bitIndex < 8 {
		return
	}
	c.bitIndex = 0

	c.channel++
	if c.channel < 3 {
		return
	}
	c.channel = 0

	c.by++
	if c.by < c.blocksY {
		return
	}
	c.by = 0

	c.bx++
	if c.bx < c.blocksX {
		return
	}
	c.done = true
}
