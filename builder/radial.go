// SPDX-License-Identifier: MIT
// Package: tensegra/builder
//
// radial.go — hub-and-spoke pull complexes and the self-terminating
// convergence protocol that swaps them for rigid connections.

package builder

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"go.uber.org/zap"

	"github.com/solwyrm/tensegra/fabric"
	"github.com/solwyrm/tensegra/geom"
)

// FaceAction is a deferred strategy attached to marked faces.
type FaceAction uint8

const (
	// ActionJoin pulls faces together until they can be rigidly
	// connected.
	ActionJoin FaceAction = iota
	// ActionDistance holds faces at a scaled distance with persistent
	// scaffolding (removed by the Shaping→Slack cleanup).
	ActionDistance
)

// String implements fmt.Stringer.
func (a FaceAction) String() string {
	if a == ActionJoin {
		return "join"
	}
	return "distance"
}

// PullComplex is the temporary hub-and-spoke scaffold drawing two faces
// together: one synthetic hub per face, a hub-to-hub connector, and
// spokes to each face's corners.
type PullComplex struct {
	Alpha, Omega       *fabric.Face
	AlphaHub, OmegaHub *fabric.Joint
	Connector          *fabric.Interval
	Spokes             []*fabric.Interval
}

// CreateRadialPulls builds pull complexes for the given faces.
//
// Distance action: one complex per unordered face pair at actionScale.
// Join action with two faces of opposite spin: a single direct complex.
// Same-spin pairs and triples first synthesize an omni twist between
// the faces and attach each one to the closest still-exposed face of
// the opposite spin; a plain bridge could never serve here, since it
// exposes exactly one face of each handedness.
func (b *Builder) CreateRadialPulls(faces []*fabric.Face, action FaceAction, actionScale float64) ([]*PullComplex, error) {
	switch action {
	case ActionDistance:
		if len(faces) < 2 {
			return nil, fmt.Errorf("CreateRadialPulls: distance with %d faces: %w", len(faces), ErrFaceCount)
		}
		var complexes []*PullComplex
		for i := 0; i < len(faces); i++ {
			for k := i + 1; k < len(faces); k++ {
				complexes = append(complexes, b.createPullComplex(faces[i], faces[k], fabric.RoleFaceConnector, actionScale))
			}
		}
		return complexes, nil

	case ActionJoin:
		switch len(faces) {
		case 2:
			if faces[0].Spin != faces[1].Spin {
				return []*PullComplex{b.createPullComplex(faces[0], faces[1], fabric.RoleConnectorPull, actionScale)}, nil
			}
			return b.joinThroughTwist(faces)
		case 3:
			return b.joinThroughTwist(faces)
		default:
			return nil, fmt.Errorf("CreateRadialPulls: join with %d faces: %w", len(faces), ErrFaceCount)
		}

	default:
		return nil, fmt.Errorf("CreateRadialPulls: action %d: %w", action, ErrFaceCount)
	}
}

// joinThroughTwist synthesizes an omni twist at the faces' centroid and
// attaches each input face, by a converging complex, to the closest
// still-unclaimed exposed face of the opposite spin.
func (b *Builder) joinThroughTwist(faces []*fabric.Face) ([]*PullComplex, error) {
	midpoints := make([]v3.Vec, len(faces))
	scale := 0.0
	for i, face := range faces {
		midpoints[i] = b.fab.FaceMidpoint(face)
		scale += face.Scale
	}
	scale /= float64(len(faces))

	bridge, err := b.CreateTwistAt(geom.Midpoint(midpoints...), faces[0].Spin, scale, true)
	if err != nil {
		return nil, err
	}
	claimed := map[*fabric.Face]bool{}
	complexes := make([]*PullComplex, 0, len(faces))
	for _, face := range faces {
		target := b.closestOpposing(face, bridge.LiveFaces(), claimed)
		if target == nil {
			return nil, fmt.Errorf("joinThroughTwist: no exposed %s face left: %w", face.Spin.Opposite(), ErrFaceCount)
		}
		claimed[target] = true
		complexes = append(complexes, b.createPullComplex(face, target, fabric.RoleConnectorPull, face.Scale))
	}
	return complexes, nil
}

// closestOpposing picks the nearest unclaimed candidate of opposite
// spin, by face midpoint distance.
func (b *Builder) closestOpposing(face *fabric.Face, candidates []*fabric.Face, claimed map[*fabric.Face]bool) *fabric.Face {
	mid := b.fab.FaceMidpoint(face)
	var best *fabric.Face
	bestDistance := 0.0
	for _, candidate := range candidates {
		if claimed[candidate] || candidate.Spin == face.Spin {
			continue
		}
		distance := b.fab.FaceMidpoint(candidate).Sub(mid).Length()
		if best == nil || distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}

// createPullComplex plants a hub at each face midpoint, joins the hubs
// with a connector of the given role, and radiates spokes to every
// corner of both faces.
func (b *Builder) createPullComplex(faceA, faceB *fabric.Face, connectorRole fabric.Role, scale float64) *PullComplex {
	hubA := b.fab.CreateJointAt(b.fab.FaceMidpoint(faceA))
	hubB := b.fab.CreateJointAt(b.fab.FaceMidpoint(faceB))
	complex := &PullComplex{
		Alpha:     faceA,
		Omega:     faceB,
		AlphaHub:  hubA,
		OmegaHub:  hubB,
		Connector: b.fab.CreateInterval(hubA, hubB, connectorRole, scale),
	}
	for _, end := range faceA.Ends {
		complex.Spokes = append(complex.Spokes, b.fab.CreateInterval(hubA, end, fabric.RoleRadialPull, scale))
	}
	for _, end := range faceB.Ends {
		complex.Spokes = append(complex.Spokes, b.fab.CreateInterval(hubB, end, fabric.RoleRadialPull, scale))
	}
	b.log.Debug("pull complex created",
		zap.Stringer("connectorRole", connectorRole),
		zap.Float64("scale", scale),
	)
	return complex
}

// CheckConnectors walks the outstanding pull complexes once. A complex
// whose hub-to-hub connector carries the connector role and whose hub
// distance is at or below the convergence threshold is replaced by a
// rigid ring connection between its two faces; its connector and
// spokes are handed to remove and it drops from the returned active
// list. Everything else stays active for the next tick. The hub joints
// remain in the catalog — joints are never removed mid-life.
//
// A converging complex over a face an earlier connection already
// consumed is a construction inconsistency and returns ErrFaceConsumed;
// it can only arise when two complexes were built over the same face.
func (b *Builder) CheckConnectors(complexes []*PullComplex, remove func(*fabric.Interval)) ([]*PullComplex, error) {
	threshold := b.fab.Features()(fabric.FeatureConnectorThreshold)
	active := complexes[:0]
	for _, complex := range complexes {
		if complex.Connector.Role != fabric.RoleConnectorPull {
			active = append(active, complex)
			continue
		}
		if complex.Alpha.Removed || complex.Omega.Removed {
			return nil, fmt.Errorf("CheckConnectors: faces %d-%d: %w",
				complex.Alpha.Index, complex.Omega.Index, ErrFaceConsumed)
		}
		distance := b.fab.Location(complex.OmegaHub).Sub(b.fab.Location(complex.AlphaHub)).Length()
		if distance > threshold {
			active = append(active, complex)
			continue
		}
		if _, err := b.ConnectFaces(complex.Alpha, complex.Omega); err != nil {
			return nil, err
		}
		remove(complex.Connector)
		for _, spoke := range complex.Spokes {
			remove(spoke)
		}
		b.log.Debug("connector converged", zap.Float64("distance", distance))
	}
	return active, nil
}
