// SPDX-License-Identifier: MIT
// Package: tensegra/fabric
//
// types.go — closed enumerations (Spin, Role) and the shared element
// handles (Joint, Interval, Face, Tip) of the structure graph.

package fabric

import "math"

// Spin is the rotational handedness of a twist or face.
type Spin uint8

const (
	// SpinLeft winds counter-clockwise seen from the far end.
	SpinLeft Spin = iota
	// SpinRight winds clockwise seen from the far end.
	SpinRight
)

// Opposite returns the mirrored handedness.
func (s Spin) Opposite() Spin {
	if s == SpinLeft {
		return SpinRight
	}
	return SpinLeft
}

// String implements fmt.Stringer.
func (s Spin) String() string {
	if s == SpinLeft {
		return "left"
	}
	return "right"
}

// Role tags an interval's structural purpose. The set is closed; every
// switch over Role in this module is exhaustive.
type Role uint8

const (
	// RoleRootPush is the compression strut of a plain twist.
	RoleRootPush Role = iota
	// RolePhiPush is the compression strut of an omni twist half.
	RolePhiPush
	// RoleTipPush is the outward strut capping a face tip.
	RoleTipPush
	// RoleTwistPull forms a twist's end polygons and helical diagonals.
	RoleTwistPull
	// RoleRing ties two connected face rings together.
	RoleRing
	// RoleCross is the uniform member role of omni-to-omni connections.
	RoleCross
	// RoleInterTwist is the up/down member between two connected twists.
	RoleInterTwist
	// RoleFaceConnector holds two faces at a distance; temporary, removed
	// by the Shaping→Slack cleanup.
	RoleFaceConnector
	// RoleRadialPull is a hub-to-corner spoke of a pull complex.
	RoleRadialPull
	// RoleConnectorPull is the hub-to-hub member of a converging pull
	// complex; replaced by a rigid connection under the threshold.
	RoleConnectorPull
	// RoleTipInner fans from a tip's base to the capped face corners.
	RoleTipInner
	// RoleTipOuter fans from a tip's point to the capped face corners.
	RoleTipOuter

	roleCount
)

var roleNames = [roleCount]string{
	"root-push", "phi-push", "tip-push",
	"twist-pull", "ring", "cross", "inter-twist",
	"face-connector", "radial-pull", "connector-pull",
	"tip-inner", "tip-outer",
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown-role"
}

// Push reports whether the role is a compression member.
func (r Role) Push() bool {
	switch r {
	case RoleRootPush, RolePhiPush, RoleTipPush:
		return true
	default:
		return false
	}
}

// Scaffold reports whether the role is temporary shaping scaffolding,
// removed when the structure goes slack.
func (r Role) Scaffold() bool {
	switch r {
	case RoleFaceConnector, RoleRadialPull, RoleConnectorPull:
		return true
	default:
		return false
	}
}

// Canonical role proportions. Scales multiply these.
const (
	lengthPhi   = 1.618033988749895 // golden ratio
	lengthHub   = 0.05              // contracted connector rest length
	lengthSpoke = 0.5               // radial spoke rest length
)

// DefaultLength returns the canonical rest length of the role at 100%
// scale.
func (r Role) DefaultLength() float64 {
	switch r {
	case RoleRootPush:
		return math.Sqrt2
	case RolePhiPush:
		return lengthPhi
	case RoleTipPush:
		return 1
	case RoleTwistPull, RoleRing, RoleCross, RoleInterTwist:
		return 1
	case RoleFaceConnector:
		return 1
	case RoleRadialPull:
		return lengthSpoke
	case RoleConnectorPull:
		return lengthHub
	case RoleTipInner, RoleTipOuter:
		return 1
	default:
		return 1
	}
}

// Joint is a point mass handle. Its position lives in the engine; the
// handle carries only the live engine index.
type Joint struct {
	Index int
}

// Interval is a push or pull member between two joints. Index is the
// live engine index, kept contiguous by Fabric.RemoveInterval.
type Interval struct {
	Index   int
	Alpha   *Joint
	Omega   *Joint
	Role    Role
	Scale   float64 // percent of the role's canonical length
	Removed bool
}

// Touches reports whether the interval has j as an endpoint.
func (iv *Interval) Touches(j *Joint) bool {
	return iv.Alpha == j || iv.Omega == j
}

// OtherEnd returns the endpoint opposite to j. It returns j itself when
// j is not an endpoint, so callers must check Touches first.
func (iv *Interval) OtherEnd(j *Joint) *Joint {
	switch j {
	case iv.Alpha:
		return iv.Omega
	case iv.Omega:
		return iv.Alpha
	default:
		return j
	}
}

// Face is an ordered polygon of joints bounding a twist or marking a
// connection site. Ends are wound so the outward normal follows the
// face's spin convention.
type Face struct {
	Index   int
	Ends    []*Joint
	Pulls   []*Interval
	Spin    Spin
	Omni    bool
	Scale   float64 // percent
	Tip     *Tip
	Removed bool
}

// Tip is the optional cap substructure of a face: a push along the face
// normal plus inner/outer pull fans.
type Tip struct {
	Base      *Joint
	Point     *Joint
	Push      *Interval
	Intervals []*Interval // inner and outer fans
}
