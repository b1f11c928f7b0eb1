// SPDX-License-Identifier: MIT
// Package: tensegra/fabric
//
// fabric.go — the structure graph: canonical joint/interval/face
// catalogs plus the invariant-preserving mutators that keep them in
// lockstep with the engine's packed arrays.

package fabric

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"go.uber.org/zap"

	"github.com/solwyrm/tensegra/geom"
)

// Fabric owns the canonical element catalogs of one tensegrity and is
// the sole mutator of its engine instance.
type Fabric struct {
	instance Instance
	features FeatureFn
	log      *zap.Logger

	joints    []*Joint
	intervals []*Interval
	faces     []*Face

	// anchor is the base face selected by a lone tenscript mark; the
	// Shaping→Slack transition aligns it onto the ground plane.
	anchor *Face
}

// Option configures a Fabric at construction time.
type Option func(*Fabric)

// WithFeatures overrides the numeric feature table.
func WithFeatures(fn FeatureFn) Option {
	return func(f *Fabric) { f.features = fn }
}

// WithLogger attaches a structured logger; the default is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(f *Fabric) { f.log = log }
}

// New creates an empty structure graph bound to the given engine
// instance. Options are applied in order, last wins.
func New(inst Instance, opts ...Option) (*Fabric, error) {
	if inst == nil {
		return nil, fmt.Errorf("New: %w", ErrNilInstance)
	}
	f := &Fabric{
		instance: inst,
		features: DefaultFeatures(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Instance exposes the engine boundary for read-only collaborators.
func (f *Fabric) Instance() Instance { return f.instance }

// Features exposes the numeric feature table.
func (f *Fabric) Features() FeatureFn { return f.features }

// Joints returns the live joint catalog. Callers must not mutate it.
func (f *Fabric) Joints() []*Joint { return f.joints }

// Intervals returns the live interval catalog. Callers must not mutate it.
func (f *Fabric) Intervals() []*Interval { return f.intervals }

// Faces returns the live face catalog. Callers must not mutate it.
func (f *Fabric) Faces() []*Face { return f.faces }

// Anchor returns the base-face anchor, or nil when none is set.
func (f *Fabric) Anchor() *Face { return f.anchor }

// SetAnchor records face as the base-face anchor.
func (f *Fabric) SetAnchor(face *Face) { f.anchor = face }

// CreateJointAt registers a point with the engine and appends the
// handle to the joint catalog. Joints are never removed mid-life.
func (f *Fabric) CreateJointAt(location v3.Vec) *Joint {
	j := &Joint{Index: f.instance.CreateJoint(location)}
	f.joints = append(f.joints, j)
	return j
}

// Location reports a joint's current position.
func (f *Fabric) Location(j *Joint) v3.Vec {
	return f.instance.JointLocation(j.Index)
}

// CreateInterval registers a member between alpha and omega. The rest
// length is the role's canonical length times the scale factor; the
// ideal length starts at the current joint distance and interpolates to
// rest over a countdown proportional to the gap.
func (f *Fabric) CreateInterval(alpha, omega *Joint, role Role, scale float64) *Interval {
	factor := geom.PercentToFactor(scale)
	idealLength := f.Location(omega).Sub(f.Location(alpha)).Length()
	restLength := role.DefaultLength() * factor
	stiffness := f.features(FeatureStiffness) * factor
	linearDensity := math.Sqrt(stiffness)
	countdown := int(math.Max(1, math.Round(f.features(FeatureIntervalCountdown)*math.Abs(restLength-idealLength))))

	iv := &Interval{
		Alpha: alpha,
		Omega: omega,
		Role:  role,
		Scale: scale,
	}
	iv.Index = f.instance.CreateInterval(
		alpha.Index, omega.Index, role.Push(),
		idealLength, restLength, stiffness, linearDensity, countdown,
	)
	f.intervals = append(f.intervals, iv)
	return iv
}

// RemoveInterval marks the member removed, deletes it from the engine
// and the catalog, and decrements every interval index greater than the
// removed one. The engine repacks its arrays on removal, so this
// renumbering keeps the ordered interval indices bijective with the
// engine's live member list.
func (f *Fabric) RemoveInterval(iv *Interval) {
	if iv.Removed {
		return
	}
	iv.Removed = true
	f.instance.RemoveInterval(iv.Index)
	removed := iv.Index
	kept := f.intervals[:0]
	for _, other := range f.intervals {
		if other == iv {
			continue
		}
		if other.Index > removed {
			other.Index--
		}
		kept = append(kept, other)
	}
	f.intervals = kept
}

// FindInterval returns the live member joining a and b in either
// direction, or nil when none exists.
func (f *Fabric) FindInterval(a, b *Joint) *Interval {
	for _, iv := range f.intervals {
		if (iv.Alpha == a && iv.Omega == b) || (iv.Alpha == b && iv.Omega == a) {
			return iv
		}
	}
	return nil
}

// CreateFace builds a face over the ordered ends. When knownPulls is
// nil, the boundary pulls are resolved by scanning the interval catalog
// from the most recently created member backward for each consecutive
// end pair — newest first, because faces are frequently rebuilt from
// fresh members that briefly coexist with stale duplicates. A missing
// boundary pull is a construction invariant violation (ErrFaceBoundary).
func (f *Fabric) CreateFace(ends []*Joint, omni bool, spin Spin, scale float64, knownPulls []*Interval) (*Face, error) {
	if len(ends) < 3 {
		return nil, fmt.Errorf("CreateFace: got %d ends: %w", len(ends), ErrBadFaceSize)
	}
	pulls := knownPulls
	if pulls == nil {
		pulls = make([]*Interval, 0, len(ends))
		for i := range ends {
			a, b := ends[i], ends[(i+1)%len(ends)]
			pull := f.newestPullBetween(a, b)
			if pull == nil {
				return nil, fmt.Errorf("CreateFace: ends %d-%d: %w", a.Index, b.Index, ErrFaceBoundary)
			}
			pulls = append(pulls, pull)
		}
	}
	face := &Face{
		Ends:  append([]*Joint(nil), ends...),
		Pulls: pulls,
		Spin:  spin,
		Omni:  omni,
		Scale: scale,
	}
	face.Index = f.instance.CreateFace(ends[0].Index, ends[1].Index, ends[2].Index)
	f.faces = append(f.faces, face)
	return face, nil
}

// newestPullBetween scans the interval catalog backward for a live pull
// joining a and b.
func (f *Fabric) newestPullBetween(a, b *Joint) *Interval {
	for i := len(f.intervals) - 1; i >= 0; i-- {
		iv := f.intervals[i]
		if iv.Role.Push() {
			continue
		}
		if (iv.Alpha == a && iv.Omega == b) || (iv.Alpha == b && iv.Omega == a) {
			return iv
		}
	}
	return nil
}

// RemoveFace removes the face from the engine and the catalog,
// renumbering the remaining face indices above it. When withPulls is
// set, its boundary pulls are removed too; connection routines keep the
// pulls because old ring edges become edges of the junction faces.
func (f *Fabric) RemoveFace(face *Face, withPulls bool) {
	if face.Removed {
		return
	}
	face.Removed = true
	if withPulls {
		for _, pull := range face.Pulls {
			f.RemoveInterval(pull)
		}
	}
	f.instance.RemoveFace(face.Index)
	removed := face.Index
	kept := f.faces[:0]
	for _, other := range f.faces {
		if other == face {
			continue
		}
		if other.Index > removed {
			other.Index--
		}
		kept = append(kept, other)
	}
	f.faces = kept
	if f.anchor == face {
		f.anchor = nil
	}
}

// FaceLocations returns the current corner positions of the face.
func (f *Fabric) FaceLocations(face *Face) []v3.Vec {
	locations := make([]v3.Vec, len(face.Ends))
	for i, end := range face.Ends {
		locations[i] = f.Location(end)
	}
	return locations
}

// FaceMidpoint returns the current centroid of the face.
func (f *Fabric) FaceMidpoint(face *Face) v3.Vec {
	return geom.Midpoint(f.FaceLocations(face)...)
}

// FaceNormal returns the current outward unit normal of the face.
func (f *Fabric) FaceNormal(face *Face) v3.Vec {
	locations := f.FaceLocations(face)
	return geom.Normal(locations[0], locations[1], locations[2])
}

// AdoptRestLengths commits current physical lengths as rest lengths.
func (f *Fabric) AdoptRestLengths() {
	f.log.Debug("adopting rest lengths", zap.Int("intervals", len(f.intervals)))
	f.instance.AdoptLengths()
}

// RemoveScaffold deletes every remaining temporary scaffold member
// (face connectors, radial pulls, hub connectors).
func (f *Fabric) RemoveScaffold() {
	for removedAny := true; removedAny; {
		removedAny = false
		for _, iv := range f.intervals {
			if iv.Role.Scaffold() {
				f.RemoveInterval(iv)
				removedAny = true
				break
			}
		}
	}
}

// SettleToGround aligns the anchored base face onto the ground plane
// and lifts the structure to the base altitude. Without an anchor it
// only lifts so that no joint sits below ground.
func (f *Fabric) SettleToGround() {
	if f.anchor != nil {
		apply := geom.GroundTransform(
			f.FaceMidpoint(f.anchor),
			f.FaceNormal(f.anchor),
			f.features(FeatureBaseAltitude),
		)
		f.instance.Transform(apply)
		return
	}
	lowest := math.Inf(1)
	for _, j := range f.joints {
		if y := f.Location(j).Y; y < lowest {
			lowest = y
		}
	}
	if len(f.joints) == 0 || lowest >= 0 {
		return
	}
	lift := -lowest
	f.instance.Transform(func(p v3.Vec) v3.Vec {
		return p.Add(v3.Vec{Y: lift})
	})
}

// SnapshotInstance captures the engine state for a later restore.
func (f *Fabric) SnapshotInstance() {
	f.instance.Snapshot()
}
