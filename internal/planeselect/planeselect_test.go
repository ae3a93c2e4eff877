package planeselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pixelveil-go/bpcs/internal/bitplane"
	"github.com/pixelveil-go/bpcs/internal/bpcserr"
)

func randomView(width, height int, seed uint64) bitplane.View {
	pix := make([]byte, width*height*3)
	r := uint64(seed)
	for i := range pix {
		r = r*6364136223846793005 + 1442695040888963407
		pix[i] = byte(r >> 56)
	}
	return bitplane.View{Pix: pix, Stride: width * 3}
}

func TestSameKeyProducesSameOrder(t *testing.T) {
	view := randomView(64, 64, 1)

	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}

	// Selector takes ownership of its map and mutates it in place, so each
	// selector under test gets its own freshly collected map rather than
	// sharing one between them.
	s1 := New(CollectComplex(view, 64, 64, 0.3), key)
	s2 := New(CollectComplex(view, 64, 64, 0.3), key)

	n := s1.Remaining()
	require.Equal(t, n, s2.Remaining())

	got1, err := s1.SelectN(n)
	require.NoError(t, err)
	got2, err := s2.SelectN(n)
	require.NoError(t, err)
	assert.Equal(t, got1, got2)
}

func TestDifferentKeysProduceDifferentOrders(t *testing.T) {
	view := randomView(64, 64, 1)

	var keyA, keyB [32]byte
	keyB[0] = 1

	sa := New(CollectComplex(view, 64, 64, 0.3), keyA)
	sb := New(CollectComplex(view, 64, 64, 0.3), keyB)

	n := sa.Remaining()
	if n < 8 {
		t.Skip("not enough complex planes in fixture to distinguish orders")
	}

	gotA, err := sa.SelectN(n)
	require.NoError(t, err)
	gotB, err := sb.SelectN(n)
	require.NoError(t, err)
	assert.NotEqual(t, gotA, gotB)
}

func TestSelectNExhaustsWithoutOverlap(t *testing.T) {
	view := randomView(32, 32, 7)
	byBit := CollectComplex(view, 32, 32, 0.3)
	var key [32]byte
	s := New(byBit, key)

	total := s.Remaining()
	if total < 4 {
		t.Skip("not enough complex planes in fixture")
	}

	first, err := s.SelectN(2)
	require.NoError(t, err)
	rest, err := s.SelectN(total - 2)
	require.NoError(t, err)

	seen := make(map[Coord]bool)
	for _, c := range append(append([]Coord{}, first...), rest...) {
		assert.False(t, seen[c], "coordinate selected twice: %+v", c)
		seen[c] = true
	}
	assert.Len(t, seen, total)
}

func TestSelectNInsufficientPlanes(t *testing.T) {
	byBit := map[uint8][]Coord{
		7: {{X: 0, Y: 0, Channel: 0, BitIndex: 7}},
	}
	var key [32]byte
	s := New(byBit, key)

	_, err := s.SelectN(2)
	require.Error(t, err)
	var insufficient *bpcserr.InsufficientPlanesError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Expected)
	assert.Equal(t, 1, insufficient.Got)
}

func TestSelectNNeverRepeatsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nCoords := rapid.IntRange(0, 40).Draw(t, "nCoords")
		byBit := make(map[uint8][]Coord)
		for i := 0; i < nCoords; i++ {
			bit := uint8(rapid.IntRange(0, 7).Draw(t, "bit"))
			byBit[bit] = append(byBit[bit], Coord{X: i * 8, Y: 0, Channel: 0, BitIndex: bit})
		}
		var key [32]byte
		key[0] = byte(nCoords)

		s := New(byBit, key)
		assert.Equal(t, nCoords, s.Remaining())

		got, err := s.SelectN(nCoords)
		require.NoError(t, err)

		seen := make(map[Coord]bool)
		for _, c := range got {
			assert.False(t, seen[c])
			seen[c] = true
		}

		_, err = s.SelectN(1)
		assert.Error(t, err)
	})
}
