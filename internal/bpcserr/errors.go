// Package bpcserr defines the two error kinds the BPCS pipeline can raise.
// It is a leaf package (no dependency on any other bpcs package) so that
// both the plane selector and the IV/frame code can construct them without
// creating an import cycle through the root package, which re-exports them
// under their public names via type aliases.
package bpcserr

import "fmt"

// InsufficientPlanesError reports that fewer complex planes are available
// than an operation required.
type InsufficientPlanesError struct {
	Expected int
	Got      int
}

func (e *InsufficientPlanesError) Error() string {
	return fmt.Sprintf("bpcs: operation requires at least %d complex planes, got %d", e.Expected, e.Got)
}

// InvalidIVError reports that a parsed initialization vector is
// inconsistent with the BPCS data model.
type InvalidIVError struct {
	Reason string
}

func (e *InvalidIVError) Error() string {
	return fmt.Sprintf("bpcs: invalid IV: %s", e.Reason)
}
