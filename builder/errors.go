// SPDX-License-Identifier: MIT
// Package: tensegra/builder
//
// errors.go — sentinel errors for the topology builder.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Call sites wrap with %w plus the offending element indices.
//   • Every sentinel marks a builder bug, not bad input; callers treat
//     all of them as fatal and never retry.

package builder

import "errors"

// ErrRingMismatch is returned when two faces of unequal corner counts
// are handed to ConnectFaces; ring matching is defined only for equal
// rings.
var ErrRingMismatch = errors.New("builder: face rings differ in size")

// ErrDegenerateTwist is returned when a ring-matching joint has no push
// partner, or an omni fusion cannot trace a junction face's boundary
// pull. The twist the joint belongs to is malformed.
var ErrDegenerateTwist = errors.New("builder: degenerate twist")

// ErrFaceCount is returned when CreateRadialPulls receives an
// unsupported number of faces for the requested action (join needs two
// or three, distance needs at least two).
var ErrFaceCount = errors.New("builder: unsupported face count for action")

// ErrFaceConsumed is returned when a converging pull complex refers to
// a face an earlier connection already removed; two complexes were
// built over the same face.
var ErrFaceConsumed = errors.New("builder: complex face already consumed")
