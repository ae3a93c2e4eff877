// Package bpcs implements Bit-Plane Complexity Segmentation steganography:
// hiding an arbitrary byte payload inside the noise-like regions of a
// lossless RGB8 image, and recovering it again.
//
// The carrier is decomposed into 8x8 bit-planes across its three Gray-coded
// color channels and all eight bit positions; planes whose complexity
// coefficient clears a caller-chosen threshold are "complex enough" to
// carry data without a visible trace. A 32-byte key seeds the deterministic
// placement of the initialization vector, a conjugation map, and the
// payload itself across disjoint sets of those planes.
//
// Basic usage:
//
//	err := bpcs.Embed(carrier, payload, 0.3, key)
//	...
//	payload, err := bpcs.Extract(carrier, 0.3, key)
//
// Both alphaMin and key must match bit-exactly between Embed and Extract.
package bpcs
