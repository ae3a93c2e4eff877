// Package bitplane implements the 8x8 boolean bit-plane: its construction
// from a block of pixels, its complexity coefficient (alpha), and the
// checkerboard conjugation that forces alpha >= 0.5.
package bitplane

import "github.com/pixelveil-go/bpcs/internal/bitops"

// Size is the edge length of a bit-plane block, in pixels/bits.
const Size = 8

// maxTransitions is the maximum number of horizontal+vertical bit
// transitions in an 8x8 plane: 2*7*8 = 112.
const maxTransitions = 2 * (Size - 1) * Size

// BitPlane is an 8x8 matrix of booleans, indexed [x][y] with x the
// horizontal (block-local column) coordinate and y the vertical one.
type BitPlane struct {
	Bits [Size][Size]bool
}

// Checkerboard returns the fixed 8x8 pattern where cell (x,y) is set iff
// (x+y) is odd. Conjugation is XOR with this pattern.
func Checkerboard() BitPlane {
	var c BitPlane
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			c.Bits[x][y] = (x+y)%2 != 0
		}
	}
	return c
}

// FromBits builds a plane from 64 bits in row-major order (bits[x*8+y]).
func FromBits(bits []bool) BitPlane {
	if len(bits) != Size*Size {
		panic("bitplane: FromBits requires exactly 64 bits")
	}
	var p BitPlane
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			p.Bits[x][y] = bits[x*Size+y]
		}
	}
	return p
}

// ToBools exports the plane as 64 bits in row-major order.
func (p BitPlane) ToBools() []bool {
	bits := make([]bool, Size*Size)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			bits[x*Size+y] = p.Bits[x][y]
		}
	}
	return bits
}

// ToBytes packs the plane's 64 row-major bits MSB-first into 8 bytes.
func (p BitPlane) ToBytes() [8]byte {
	bits := p.ToBools()
	var out [8]byte
	for i := 0; i < 8; i++ {
		var chunk [8]bool
		copy(chunk[:], bits[i*8:(i+1)*8])
		out[i] = bitops.PackBitsMSB(chunk)
	}
	return out
}

// Conjugate XORs the plane with the checkerboard pattern. Conjugation is
// its own inverse, and maps alpha to 1-alpha.
func (p *BitPlane) Conjugate() {
	board := Checkerboard()
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			p.Bits[x][y] = p.Bits[x][y] != board.Bits[x][y]
		}
	}
}

// Alpha returns the plane's complexity coefficient: the ratio of
// horizontal+vertical bit transitions to the maximum possible (112).
func (p BitPlane) Alpha() float64 {
	changes := 0
	for x := 1; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if p.Bits[x][y] != p.Bits[x-1][y] {
				changes++
			}
		}
	}
	for y := 1; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if p.Bits[x][y] != p.Bits[x][y-1] {
				changes++
			}
		}
	}
	return float64(changes) / float64(maxTransitions)
}

// View is a minimal pixel-buffer accessor: a row-major RGB buffer (3 bytes
// per pixel) with the given stride in bytes. It lets this package read and
// write carrier blocks without importing the root bpcs package (which in
// turn imports this one).
type View struct {
	Pix    []byte
	Stride int // bytes per row
}

func (v View) offset(x, y int, channel uint8) int {
	return y*v.Stride + x*3 + int(channel)
}

// FromView reads the 8x8 block at (blockX, blockY) for the given channel
// and bit index (0 = MSB) into a new BitPlane.
func FromView(v View, blockX, blockY int, channel, bitIndex uint8) BitPlane {
	var p BitPlane
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			b := v.Pix[v.offset(blockX+x, blockY+y, channel)]
			p.Bits[x][y] = bitops.UnpackByteMSB(b)[bitIndex]
		}
	}
	return p
}

// WriteTo writes the plane's 64 bits back into the 8x8 block at (blockX,
// blockY) for the given channel and bit index, leaving every other bit of
// every channel untouched.
func (p BitPlane) WriteTo(v View, blockX, blockY int, channel, bitIndex uint8) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			off := v.offset(blockX+x, blockY+y, channel)
			bits := bitops.UnpackByteMSB(v.Pix[off])
			bits[bitIndex] = p.Bits[x][y]
			v.Pix[off] = bitops.PackBitsMSB(bits)
		}
	}
}
