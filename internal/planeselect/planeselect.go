// Package planeselect chooses, deterministically from a 32-byte key, which
// complex bit-planes carry the IV, the conjugation map, and the payload. The
// same key reproduces the same selection order on extraction, so planes
// assigned to one region never collide with planes assigned to another.
package planeselect

import (
	"math/rand/v2"

	"github.com/pixelveil-go/bpcs/internal/bitplane"
	"github.com/pixelveil-go/bpcs/internal/bpcserr"
	"github.com/pixelveil-go/bpcs/internal/planeiter"
)

// Coord re-exports planeiter.Coord so callers outside this package tree
// don't need to import planeiter directly.
type Coord = planeiter.Coord

// Selector hands out complex-plane coordinates from a per-bit-index pool,
// one SelectN call at a time. Each call drains bit index 7 downward,
// consuming a whole bucket before spilling into the next (lower)
// bit index, and only reaches bit index 0 when forced to by the call's
// size — altering low-order bits perturbs the carrier least, so those are
// preferred. Buckets are left untouched by any call that doesn't need
// them; only the coordinates a given call actually draws are shuffled, and
// only after they've been drawn.
type Selector struct {
	byBit map[uint8][]Coord
	total int
	rng   *rand.Rand
}

// CollectComplex walks every bit-plane of the given carrier view with a
// planeiter.Cursor and returns the coordinates of the planes whose alpha is
// at least alphaMin, grouped by bit index; within a group, coordinates
// appear in cursor traversal order.
func CollectComplex(view bitplane.View, width, height int, alphaMin float64) map[uint8][]Coord {
	byBit := make(map[uint8][]Coord)
	cur := planeiter.New(view, width, height)
	for {
		coord, plane, ok := cur.Next()
		if !ok {
			break
		}
		if plane.Alpha() >= alphaMin {
			byBit[coord.BitIndex] = append(byBit[coord.BitIndex], coord)
		}
	}
	return byBit
}

// New builds a Selector from a by-bit-index coordinate map (as produced by
// CollectComplex) and a 32-byte key. The map is taken over by the Selector
// and mutated in place by subsequent SelectN calls.
func New(byBit map[uint8][]Coord, key [32]byte) *Selector {
	total := 0
	for _, coords := range byBit {
		total += len(coords)
	}
	return &Selector{
		byBit: byBit,
		total: total,
		rng:   rand.New(rand.NewChaCha8(key)),
	}
}

// SelectN draws k coordinates from the pool: bit index 7 downward, taking
// an entire bucket whenever it's smaller than what's still needed, and
// swap-remove sampling just enough from the bucket that satisfies the
// remainder. The call's own output is shuffled once, after every bucket it
// touched has been drained; untouched buckets are left exactly as they
// were. Returns *bpcserr.InsufficientPlanesError if fewer than k
// coordinates remain across all bit indices.
func (s *Selector) SelectN(k int) ([]Coord, error) {
	if k > s.total {
		return nil, &bpcserr.InsufficientPlanesError{Expected: k, Got: s.total}
	}

	selected := make([]Coord, 0, k)
	need := k
	for bit := 7; bit >= 0 && need > 0; bit-- {
		bucket := s.byBit[uint8(bit)]
		if len(bucket) <= need {
			selected = append(selected, bucket...)
			need -= len(bucket)
			delete(s.byBit, uint8(bit))
			continue
		}
		selected = append(selected, s.sampleBucket(uint8(bit), need)...)
		need = 0
	}

	s.rng.Shuffle(len(selected), func(i, j int) { selected[i], selected[j] = selected[j], selected[i] })
	s.total -= k
	return selected, nil
}

// sampleBucket draws k coordinates without replacement from the bucket at
// bit, via swap-remove, leaving the bucket holding whatever wasn't drawn.
func (s *Selector) sampleBucket(bit uint8, k int) []Coord {
	bucket := s.byBit[bit]
	selected := make([]Coord, 0, k)
	for i := 0; i < k; i++ {
		j := s.rng.IntN(len(bucket))
		last := len(bucket) - 1
		selected = append(selected, bucket[j])
		bucket[j] = bucket[last]
		bucket = bucket[:last]
	}
	s.byBit[bit] = bucket
	return selected
}

// Remaining reports how many coordinates SelectN can still hand out across
// all bit indices.
func (s *Selector) Remaining() int {
	return s.total
}
