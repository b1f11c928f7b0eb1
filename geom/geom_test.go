// Package geom_test verifies the stateless geometry helpers: scale
// conversion round-trips, midpoint/normal projection, radial ring
// placement, and the ground-alignment transform.
package geom_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwyrm/tensegra/geom"
)

const epsilon = 1e-9

func TestPercentFactorRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		percent float64
		factor  float64
	}{
		{"full", 100, 1},
		{"half", 50, 0.5},
		{"enlarged", 160, 1.6},
		{"zero", 0, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.factor, geom.PercentToFactor(tc.percent), epsilon)
			assert.InDelta(t, tc.percent, geom.FactorToPercent(tc.factor), epsilon)
		})
	}
}

func TestMidpoint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, v3.Vec{}, geom.Midpoint(), "empty set collapses to origin")

	mid := geom.Midpoint(
		v3.Vec{X: 1},
		v3.Vec{Y: 1},
		v3.Vec{Z: 1},
	)
	assert.InDelta(t, 1.0/3.0, mid.X, epsilon)
	assert.InDelta(t, 1.0/3.0, mid.Y, epsilon)
	assert.InDelta(t, 1.0/3.0, mid.Z, epsilon)
}

func TestNormalFollowsWinding(t *testing.T) {
	t.Parallel()

	a := v3.Vec{}
	b := v3.Vec{X: 1}
	c := v3.Vec{Z: 1}

	up := geom.Normal(a, c, b) // counter-clockwise seen from +Y
	assert.InDelta(t, 1, up.Y, epsilon)

	down := geom.Normal(a, b, c) // reversed winding flips the normal
	assert.InDelta(t, -1, down.Y, epsilon)
}

func TestRadialRing(t *testing.T) {
	t.Parallel()

	const (
		radius = 2.5
		count  = 3
	)
	center := v3.Vec{X: 1, Y: 4, Z: -2}
	ring := geom.RadialRing(center, v3.Vec{Y: 1}, radius, count)
	require.Len(t, ring, count)

	for i, p := range ring {
		assert.InDelta(t, radius, p.Sub(center).Length(), epsilon, "point %d off the circle", i)
		assert.InDelta(t, center.Y, p.Y, epsilon, "point %d left the ring plane", i)
	}
	// Even spacing: every consecutive chord has the same length.
	chord := ring[1].Sub(ring[0]).Length()
	assert.InDelta(t, chord, ring[2].Sub(ring[1]).Length(), epsilon)
	assert.InDelta(t, chord, ring[0].Sub(ring[2]).Length(), epsilon)
}

func TestPerpendicular(t *testing.T) {
	t.Parallel()

	vectors := []v3.Vec{
		{X: 1}, {Y: 1}, {Z: 1},
		{X: 1, Y: 2, Z: 3},
		{X: -4, Y: 0.1, Z: 0.1},
	}
	for _, v := range vectors {
		p := geom.Perpendicular(v)
		assert.InDelta(t, 0, p.Dot(v), epsilon)
		assert.InDelta(t, 1, p.Length(), epsilon)
	}
}

func TestGroundTransform(t *testing.T) {
	t.Parallel()

	const altitude = 3.0
	mid := v3.Vec{X: 5, Y: 2, Z: -1}
	normal := v3.Vec{X: 0, Y: -1, Z: 0} // already pointing down

	apply := geom.GroundTransform(mid, normal, altitude)

	// The anchor midpoint lands at the lift point.
	moved := apply(mid)
	assert.InDelta(t, 0, moved.X, epsilon)
	assert.InDelta(t, altitude, moved.Y, epsilon)
	assert.InDelta(t, 0, moved.Z, epsilon)

	// Rigid: pairwise distances are preserved.
	a := v3.Vec{X: 6, Y: 2, Z: -1}
	b := v3.Vec{X: 5, Y: 4, Z: 2}
	before := a.Sub(b).Length()
	after := apply(a).Sub(apply(b)).Length()
	assert.InDelta(t, before, after, epsilon)

	// A point along the normal ends up directly below the midpoint image.
	alongNormal := apply(mid.Add(normal.MulScalar(2)))
	assert.InDelta(t, altitude-2, alongNormal.Y, epsilon)
	assert.InDelta(t, 0, alongNormal.X, epsilon)
	assert.InDelta(t, 0, alongNormal.Z, epsilon)
}
