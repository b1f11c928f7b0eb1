// SPDX-License-Identifier: MIT
// Package: tensegra/builder
//
// builder.go — Builder type, options, and the Twist aggregate.

package builder

import (
	"go.uber.org/zap"

	"github.com/solwyrm/tensegra/fabric"
)

// PushesPerTwist is the structure-wide number of compression pairs per
// twist; every twist in this module is triangular.
const PushesPerTwist = 3

// Builder performs procedural topology construction on one fabric. It
// holds no persistent state beyond that reference, so any number of
// builders may be created over the life of a structure.
type Builder struct {
	fab *fabric.Fabric
	log *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger attaches a structured logger; the default is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// New creates a Builder over the given fabric.
func New(fab *fabric.Fabric, opts ...Option) *Builder {
	b := &Builder{fab: fab, log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Fabric exposes the structure graph the builder operates on.
func (b *Builder) Fabric() *fabric.Fabric { return b.fab }

// Twist is the transient aggregate returned by twist construction: the
// end faces, junction faces, and members of one helical unit. It is not
// persisted beyond the elements it references; callers consume it
// immediately (typically to grow further or to connect it) and drop it.
type Twist struct {
	Spin   fabric.Spin
	Omni   bool
	Scale  float64 // percent
	Pushes []*fabric.Interval
	Pulls  []*fabric.Interval
	// Faces holds the near end face, the far end face, then any
	// junction faces in ring order.
	Faces []*fabric.Face
}

// NearFace returns the end face at the twist's base.
func (t *Twist) NearFace() *fabric.Face { return t.Faces[0] }

// FarFace returns the end face the twist grows toward.
func (t *Twist) FarFace() *fabric.Face { return t.Faces[1] }

// TouchingFaces returns the junction faces, if any (omni twists and
// connected twists have 2n of them).
func (t *Twist) TouchingFaces() []*fabric.Face { return t.Faces[2:] }

// LiveFaces returns every face of the twist not yet consumed by a
// connection, end faces first.
func (t *Twist) LiveFaces() []*fabric.Face {
	live := make([]*fabric.Face, 0, len(t.Faces))
	for _, face := range t.Faces {
		if !face.Removed {
			live = append(live, face)
		}
	}
	return live
}
