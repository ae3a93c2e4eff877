package graycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pix := rapid.SliceOf(rapid.Byte()).Draw(t, "pix")
		original := append([]byte(nil), pix...)

		Encode(pix)
		Decode(pix)

		assert.Equal(t, original, pix)
	})
}

func TestEncodeKnownPixel(t *testing.T) {
	pix := []byte{0b1110101, 0b0011000, 0b1010111}
	Encode(pix)
	assert.Equal(t, []byte{0b1001111, 0b0010100, 0b1111100}, pix)
}
