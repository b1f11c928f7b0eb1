package instance_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwyrm/tensegra/instance"
)

const (
	floatTolerance = 1e-9
	settleTicks    = 10000
)

// buildPair registers two joints spanned by one pull member and returns
// the engine. The member starts at span length and adopts rest over the
// given countdown.
func buildPair(span, rest float64, countdown int) *instance.Memory {
	m := instance.NewMemory()
	a := m.CreateJoint(v3.Vec{})
	b := m.CreateJoint(v3.Vec{X: span})
	m.CreateInterval(a, b, false, span, rest, 1.0, 1.0, countdown)
	return m
}

func TestMemory_CreateAssignsSequentialIndices(t *testing.T) {
	m := instance.NewMemory()
	assert.Equal(t, 0, m.CreateJoint(v3.Vec{}))
	assert.Equal(t, 1, m.CreateJoint(v3.Vec{X: 1}))
	assert.Equal(t, 0, m.CreateInterval(0, 1, false, 1, 1, 1, 1, 0))
	assert.Equal(t, 1, m.CreateInterval(1, 0, true, 1, 1, 1, 1, 0))
	assert.Equal(t, 0, m.CreateFace(0, 1, 0))
	assert.Equal(t, 2, m.JointCount())
	assert.Equal(t, 2, m.MemberCount())
	assert.Equal(t, 1, m.FaceCount())
}

func TestMemory_RemoveIntervalRepacks(t *testing.T) {
	m := instance.NewMemory()
	m.CreateJoint(v3.Vec{})
	m.CreateJoint(v3.Vec{X: 1})
	m.CreateInterval(0, 1, false, 1, 1, 10, 1, 0)
	m.CreateInterval(0, 1, false, 1, 1, 20, 1, 0)
	m.CreateInterval(0, 1, false, 1, 1, 30, 1, 0)

	m.RemoveInterval(1)

	require.Equal(t, 2, m.MemberCount())
	// The member behind the removed one shifts down by one index.
	assert.InDelta(t, 10, m.Stiffnesses()[0], floatTolerance)
	assert.InDelta(t, 30, m.Stiffnesses()[1], floatTolerance)
}

func TestMemory_RemoveFaceRepacks(t *testing.T) {
	m := instance.NewMemory()
	for i := 0; i < 3; i++ {
		m.CreateJoint(v3.Vec{X: float64(i)})
	}
	m.CreateFace(0, 1, 2)
	m.CreateFace(2, 1, 0)
	m.RemoveFace(0)
	assert.Equal(t, 1, m.FaceCount())
}

func TestMemory_StrainSign(t *testing.T) {
	t.Parallel()

	// Overstretched pull: real 2, ideal 1 → positive strain, ends drawn
	// together.
	stretched := buildPair(2, 1, 0)
	stretched.Iterate(1)
	assert.Greater(t, stretched.Strains()[0], 0.0)
	span := stretched.JointLocation(1).Sub(stretched.JointLocation(0)).Length()
	assert.Less(t, span, 2.0)

	// Compressed member: real 1, ideal 2 → negative strain, ends pushed
	// apart.
	compressed := buildPair(1, 2, 0)
	compressed.Iterate(1)
	assert.Less(t, compressed.Strains()[0], 0.0)
	span = compressed.JointLocation(1).Sub(compressed.JointLocation(0)).Length()
	assert.Greater(t, span, 1.0)
}

func TestMemory_CountdownInterpolatesIdeal(t *testing.T) {
	t.Parallel()

	const countdown = 100
	m := buildPair(2, 1, countdown)

	busy := m.Iterate(countdown / 2)
	assert.True(t, busy, "half-way through the countdown the member is still adopting")
	partway := m.IdealLengths()[0]
	assert.Greater(t, partway, 1.0)
	assert.Less(t, partway, 2.0)

	busy = m.Iterate(countdown)
	assert.False(t, busy, "after the countdown the member is settled")
	assert.InDelta(t, 1.0, m.IdealLengths()[0], floatTolerance)
}

func TestMemory_RelaxationConverges(t *testing.T) {
	t.Parallel()

	m := buildPair(2, 1, 50)
	m.Iterate(settleTicks)
	span := m.JointLocation(1).Sub(m.JointLocation(0)).Length()
	assert.InDelta(t, 1.0, span, 0.01, "pull should contract to its rest length")
}

func TestMemory_AdoptLengths(t *testing.T) {
	m := buildPair(2, 1, 300)
	m.Iterate(10)

	m.AdoptLengths()

	span := m.JointLocation(1).Sub(m.JointLocation(0)).Length()
	assert.InDelta(t, span, m.IdealLengths()[0], floatTolerance)
	assert.False(t, m.Iterate(1), "no countdown remains after adoption")
	// At its own length the member is strain-free, so nothing moves.
	assert.InDelta(t, 0, m.Strains()[0], floatTolerance)
}

func TestMemory_Transform(t *testing.T) {
	m := instance.NewMemory()
	m.CreateJoint(v3.Vec{X: 1})
	m.CreateJoint(v3.Vec{Y: -2})
	m.Transform(func(p v3.Vec) v3.Vec { return p.Add(v3.Vec{Y: 2}) })
	assert.InDelta(t, 2, m.JointLocation(0).Y, floatTolerance)
	assert.InDelta(t, 0, m.JointLocation(1).Y, floatTolerance)
}

func TestMemory_Midpoint(t *testing.T) {
	m := instance.NewMemory()
	m.CreateJoint(v3.Vec{X: 2})
	m.CreateJoint(v3.Vec{X: 4, Z: 2})
	mid := m.Midpoint()
	assert.InDelta(t, 3, mid.X, floatTolerance)
	assert.InDelta(t, 1, mid.Z, floatTolerance)
}

func TestMemory_SnapshotRestore(t *testing.T) {
	m := buildPair(2, 1, 0)
	m.Snapshot()

	m.SetJointLocation(1, v3.Vec{X: 9})
	m.Iterate(5)
	m.RestoreSnapshot()

	assert.InDelta(t, 2, m.JointLocation(1).X, floatTolerance)
	assert.InDelta(t, 0, m.Strains()[0], floatTolerance)
}

func TestMemory_RestoreWithoutSnapshotIsNoOp(t *testing.T) {
	m := buildPair(2, 1, 0)
	m.SetJointLocation(1, v3.Vec{X: 9})
	m.RestoreSnapshot()
	assert.InDelta(t, 9, m.JointLocation(1).X, floatTolerance)
}
