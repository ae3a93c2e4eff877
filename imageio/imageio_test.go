package imageio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelveil-go/bpcs"
)

func sampleCarrier() *bpcs.Carrier {
	pix := make([]byte, 16*16*3)
	for i := range pix {
		pix[i] = byte(i * 7)
	}
	return &bpcs.Carrier{Width: 16, Height: 16, Pix: pix}
}

func TestPNGRoundTrip(t *testing.T) {
	carrier := sampleCarrier()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, carrier, PNG))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, carrier.Width, got.Width)
	assert.Equal(t, carrier.Height, got.Height)
	assert.Equal(t, carrier.Pix, got.Pix)
}

func TestBMPRoundTrip(t *testing.T) {
	carrier := sampleCarrier()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, carrier, BMP))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, carrier.Pix, got.Pix)
}

func TestTIFFRoundTrip(t *testing.T) {
	carrier := sampleCarrier()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, carrier, TIFF))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, carrier.Pix, got.Pix)
}
