// SPDX-License-Identifier: MIT
// Package: tensegra/fabric
//
// instance.go — the capability boundary to the external physics engine.
// The fabric is the engine's sole mutator; everything else reads.

package fabric

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/solwyrm/tensegra/geom"
)

// Instance is the external physics engine as seen by the structure
// graph. Registered elements get stable indices until removal; removal
// repacks the engine's arrays, so the caller (the Fabric) renumbers its
// own records to match.
//
// The interface mirrors the engine's capability set, not its literal
// signatures. Implementations need no locking: the fabric guarantees a
// single logical thread of mutation.
type Instance interface {
	// CreateJoint registers a point mass and returns its index.
	CreateJoint(location v3.Vec) int
	// CreateInterval registers a member between two joints. idealLength
	// is the current geometric length; restLength the target; countdown
	// the number of ticks over which the ideal interpolates to rest.
	CreateInterval(alpha, omega int, push bool, idealLength, restLength, stiffness, linearDensity float64, countdown int) int
	// RemoveInterval removes a member; greater indices shift down by one.
	RemoveInterval(index int)
	// CreateFace registers a triangle and returns its index.
	CreateFace(j0, j1, j2 int) int
	// RemoveFace removes a face; greater indices shift down by one.
	RemoveFace(index int)

	// JointLocation reports the current position of a joint.
	JointLocation(index int) v3.Vec
	// Strains exposes the live per-member strain array.
	Strains() []float64
	// Stiffnesses exposes the live per-member stiffness array. The slice
	// is the engine's backing store: the strain→stiffness optimizer
	// writes new values through it.
	Stiffnesses() []float64
	// IdealLengths exposes the live per-member ideal-length array.
	IdealLengths() []float64
	// Midpoint reports the aggregate midpoint of all joints.
	Midpoint() v3.Vec

	// AdoptLengths commits current physical lengths as new rest lengths.
	AdoptLengths()
	// Transform applies a rigid transform to every joint position.
	Transform(apply geom.Transform)
	// Iterate advances the physics by the given number of ticks and
	// reports whether any member is still busy adopting its rest length.
	Iterate(ticks int) bool
	// Snapshot captures engine state for a later restore.
	Snapshot()
	// RestoreSnapshot rewinds the engine to the captured state.
	RestoreSnapshot()
}
