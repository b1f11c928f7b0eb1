// SPDX-License-Identifier: MIT
// Package: tensegra/geom
//
// geom.go — stateless vector helpers for the topology core.

package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// PercentFull is the canonical 100% scale.
const PercentFull = 100.0

// PercentToFactor converts a percentage scale to a multiplicative factor
// (100 → 1.0, 50 → 0.5).
func PercentToFactor(percent float64) float64 {
	return percent / PercentFull
}

// FactorToPercent converts a multiplicative factor back to a percentage
// scale (1.0 → 100).
func FactorToPercent(factor float64) float64 {
	return factor * PercentFull
}

// Midpoint returns the arithmetic mean of the given points.
// The zero vector is returned for an empty argument list.
func Midpoint(points ...v3.Vec) v3.Vec {
	if len(points) == 0 {
		return v3.Vec{}
	}
	var sum v3.Vec
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.DivScalar(float64(len(points)))
}

// Normal returns the unit normal of the ordered triangle (a, b, c),
// following the right-hand rule over the winding a→b→c.
func Normal(a, b, c v3.Vec) v3.Vec {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// RadialRing returns n points evenly spaced on a circle of the given
// radius around center, lying in the plane perpendicular to up. The
// first point lies along an arbitrary but deterministic basis vector.
func RadialRing(center, up v3.Vec, radius float64, n int) []v3.Vec {
	axis := up.Normalize()
	u := Perpendicular(axis)
	w := axis.Cross(u)
	ring := make([]v3.Vec, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		offset := u.MulScalar(radius * math.Cos(angle)).Add(w.MulScalar(radius * math.Sin(angle)))
		ring[i] = center.Add(offset)
	}
	return ring
}

// Perpendicular returns a unit vector perpendicular to v, chosen
// deterministically from the axis least aligned with v.
func Perpendicular(v v3.Vec) v3.Vec {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	var axis v3.Vec
	switch {
	case ax <= ay && ax <= az:
		axis = v3.Vec{X: 1}
	case ay <= az:
		axis = v3.Vec{Y: 1}
	default:
		axis = v3.Vec{Z: 1}
	}
	return v.Cross(axis).Normalize()
}

// Transform is a rigid mapping applied to joint positions.
type Transform func(v3.Vec) v3.Vec

// GroundTransform builds the rigid transform that carries midpoint to
// the origin, rotates normal to point straight down (-Y), and lifts the
// whole structure by altitude. It is used when a base face anchors the
// structure onto the ground plane.
func GroundTransform(midpoint, normal v3.Vec, altitude float64) Transform {
	down := normal.Normalize()
	u := Perpendicular(down)
	w := down.Cross(u)
	lift := v3.Vec{Y: altitude}
	return func(p v3.Vec) v3.Vec {
		rel := p.Sub(midpoint)
		// Orthonormal rows (u, -down, -w) keep the map a proper rotation.
		rotated := v3.Vec{
			X: rel.Dot(u),
			Y: -rel.Dot(down),
			Z: -rel.Dot(w),
		}
		return rotated.Add(lift)
	}
}
