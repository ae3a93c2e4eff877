package bpcs

import "github.com/pixelveil-go/bpcs/internal/bpcserr"

// InsufficientPlanesError reports that a carrier doesn't have enough
// complex bit-planes, at the requested threshold, to satisfy an embed's
// IV, conjugation-map, and payload regions, or an extract's claimed
// geometry.
type InsufficientPlanesError = bpcserr.InsufficientPlanesError

// InvalidIVError reports that extract's parsed initialization vector is
// inconsistent with the data model (currently: a remainder bit count over
// 64). It signals "wrong key, wrong threshold, or no hidden data" as
// distinct from "carrier too small".
type InvalidIVError = bpcserr.InvalidIVError
