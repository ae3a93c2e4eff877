// Package msgplane turns a payload byte stream into the sequence of
// message bit-planes the BPCS frame's payload region carries, conjugating
// any plane that doesn't already clear the fixed 0.5 complexity floor.
package msgplane

import (
	"io"
	"math/rand/v2"

	"github.com/pixelveil-go/bpcs/internal/bitops"
	"github.com/pixelveil-go/bpcs/internal/bitplane"
)

const bytesPerPlane = bitplane.Size * bitplane.Size / 8 // 8

// Produce consumes r in 8-byte chunks, emitting one BitPlane per chunk. The
// final chunk is padded with random bytes if it would otherwise be
// incomplete; its real bit count (in [1,64]) is returned as remainderBits.
// Every returned plane has alpha >= 0.5: planes are conjugated in place
// when built with alpha below that floor, and conjugated records which
// planes were flipped, one entry per plane, in the same order.
func Produce(r io.Reader) (planes []bitplane.BitPlane, conjugated []bool, remainderBits int, err error) {
	buf := make([]byte, bytesPerPlane)

	for {
		n, readErr := io.ReadFull(r, buf)
		if n == 0 {
			if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
				break
			}
			return nil, nil, 0, readErr
		}

		chunk := make([]byte, bytesPerPlane)
		copy(chunk, buf[:n])
		if n < bytesPerPlane {
			for i := n; i < bytesPerPlane; i++ {
				chunk[i] = byte(rand.IntN(256))
			}
		}
		remainderBits = n * 8

		bits := make([]bool, 0, bytesPerPlane*8)
		for _, b := range chunk {
			unpacked := bitops.UnpackByteMSB(b)
			bits = append(bits, unpacked[:]...)
		}
		plane := bitplane.FromBits(bits)

		isConjugated := false
		if plane.Alpha() < 0.5 {
			plane.Conjugate()
			isConjugated = true
		}

		planes = append(planes, plane)
		conjugated = append(conjugated, isConjugated)

		if n < bytesPerPlane || readErr == io.EOF {
			break
		}
	}

	if len(planes) > 0 && remainderBits == 0 {
		remainderBits = 64
	}

	return planes, conjugated, remainderBits, nil
}
