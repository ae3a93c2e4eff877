// Package graycode applies the BPCS Gray-code transform to a raw RGB pixel
// buffer and its inverse.
//
// The transform must run before any bit-plane is read and be undone after
// any bit-plane is written, so that writes that only flip bits inside
// already-complex planes leave the carrier visually unchanged on the
// idempotent round trip (encode then decode with no embedding in between).
package graycode

import "github.com/pixelveil-go/bpcs/internal/bitops"

// Encode maps every byte of pix (every channel of every pixel) from pure
// binary code to Gray code, in place.
func Encode(pix []byte) {
	for i, b := range pix {
		pix[i] = bitops.GrayEncode(b)
	}
}

// Decode maps every byte of pix from Gray code back to pure binary code, in
// place. Decode(Encode(pix)) is the identity for any pix.
func Decode(pix []byte) {
	for i, b := range pix {
		pix[i] = bitops.GrayDecode(b)
	}
}
