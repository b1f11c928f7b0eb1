// SPDX-License-Identifier: MIT
// Package: tensegra/fabric
//
// errors.go — sentinel errors for the structure graph.
//
// Error policy (matching the module-wide contract):
//   • Only package-level sentinels are exposed.
//   • Callers branch with errors.Is(err, ErrX).
//   • Context is attached at the call site via %w wrapping; sentinels
//     themselves never carry formatted parameters.
//   • Every sentinel here marks a construction invariant violation —
//     a bug in the builder, not bad input — so no caller retries.

package fabric

import "errors"

// ErrNilInstance is returned when a Fabric is constructed without an
// engine instance. The graph cannot register elements anywhere.
// Usage: if errors.Is(err, ErrNilInstance) { /* wire an engine */ }.
var ErrNilInstance = errors.New("fabric: engine instance is nil")

// ErrBadFaceSize is returned when CreateFace receives fewer than three
// ends; a face is an ordered polygon of 3+ joints.
var ErrBadFaceSize = errors.New("fabric: face needs at least three ends")

// ErrFaceBoundary is returned when a face's boundary pull between two
// consecutive ends cannot be found in the interval catalog. This is
// fatal: the builder that requested the face is internally inconsistent.
var ErrFaceBoundary = errors.New("fabric: face boundary pull not found")
