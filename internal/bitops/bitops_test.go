package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		bits := UnpackByteMSB(byte(v))
		assert.Equal(t, byte(v), PackBitsMSB(bits))
	}
}

func TestGrayCodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.Byte().Draw(t, "b")
		assert.Equal(t, b, GrayDecode(GrayEncode(b)))
	})
}

func TestGrayEncodeKnownValues(t *testing.T) {
	// 0b1110101 -> 0b1001111, matching the worked example in the
	// original implementation's image-utils tests.
	assert.Equal(t, byte(0b1001111), GrayEncode(0b1110101))
	assert.Equal(t, byte(0b1110101), GrayDecode(0b1001111))
}

func TestUintBitsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint32().Draw(t, "v")
		bits := UintToBits(v, 32)
		assert.Len(t, bits, 32)
		assert.Equal(t, v, BitsToUint(bits))
	})
}

func TestUintToBitsWidth(t *testing.T) {
	bits := UintToBits(5, 8)
	assert.Equal(t, []bool{false, false, false, false, false, true, false, true}, bits)
}
