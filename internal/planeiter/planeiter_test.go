package planeiter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixelveil-go/bpcs/internal/bitplane"
)

func makeView(width, height int) bitplane.View {
	stride := width * 3
	pix := make([]byte, stride*height)
	for i := range pix {
		pix[i] = byte(i)
	}
	return bitplane.View{Pix: pix, Stride: stride}
}

func TestCursorCount(t *testing.T) {
	v := makeView(24, 16)
	c := New(v, 24, 16)

	count := 0
	for {
		_, _, ok := c.Next()
		if !ok {
			break
		}
		count++
	}

	// 3 x 2 blocks, 3 channels, 8 bit indexes each.
	assert.Equal(t, 3*2*3*8, count)
}

func TestCursorIgnoresTrailingPixels(t *testing.T) {
	v := makeView(20, 20) // 20/8 = 2 whole blocks per axis, 4px trailing
	c := New(v, 20, 20)

	count := 0
	for {
		_, _, ok := c.Next()
		if !ok {
			break
		}
		count++
	}

	assert.Equal(t, 2*2*3*8, count)
}

func TestCursorCoordsAreBlockAligned(t *testing.T) {
	v := makeView(16, 16)
	c := New(v, 16, 16)

	for {
		coord, _, ok := c.Next()
		if !ok {
			break
		}
		assert.Zero(t, coord.X%8)
		assert.Zero(t, coord.Y%8)
	}
}
