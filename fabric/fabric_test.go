package fabric_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwyrm/tensegra/fabric"
	"github.com/solwyrm/tensegra/geom"
	"github.com/solwyrm/tensegra/instance"
)

const floatTolerance = 1e-9

// newFabric builds an empty fabric over a fresh in-memory engine.
func newFabric(t *testing.T) (*fabric.Fabric, *instance.Memory) {
	t.Helper()
	engine := instance.NewMemory()
	fab, err := fabric.New(engine)
	require.NoError(t, err)
	return fab, engine
}

// buildTriangle registers three joints in the XZ plane and the three
// boundary pulls between them.
func buildTriangle(fab *fabric.Fabric) ([]*fabric.Joint, []*fabric.Interval) {
	joints := []*fabric.Joint{
		fab.CreateJointAt(v3.Vec{}),
		fab.CreateJointAt(v3.Vec{X: 1}),
		fab.CreateJointAt(v3.Vec{X: 0.5, Z: 1}),
	}
	pulls := make([]*fabric.Interval, 3)
	for i := range joints {
		pulls[i] = fab.CreateInterval(joints[i], joints[(i+1)%3], fabric.RoleTwistPull, geom.PercentFull)
	}
	return joints, pulls
}

func TestNew_NilInstance(t *testing.T) {
	fab, err := fabric.New(nil)
	assert.Nil(t, fab)
	assert.ErrorIs(t, err, fabric.ErrNilInstance)
}

func TestCreateInterval_EngineParameters(t *testing.T) {
	fab, engine := newFabric(t)
	a := fab.CreateJointAt(v3.Vec{})
	b := fab.CreateJointAt(v3.Vec{X: 2})

	iv := fab.CreateInterval(a, b, fabric.RoleTwistPull, geom.PercentFull)

	assert.Equal(t, 0, iv.Index)
	// The ideal length starts at the current joint distance, not at the
	// canonical rest length.
	assert.InDelta(t, 2, engine.IdealLengths()[0], floatTolerance)
	assert.InDelta(t, 1.0, engine.Stiffnesses()[0], floatTolerance)
	// It still has a long way to contract, so the countdown is pending.
	assert.True(t, engine.Iterate(0))
}

func TestCreateInterval_ScaleShrinksRestAndStiffness(t *testing.T) {
	fab, engine := newFabric(t)
	a := fab.CreateJointAt(v3.Vec{})
	b := fab.CreateJointAt(v3.Vec{X: 0.5})

	iv := fab.CreateInterval(a, b, fabric.RoleTwistPull, 50)

	assert.InDelta(t, 50, iv.Scale, floatTolerance)
	assert.InDelta(t, 0.5, engine.Stiffnesses()[0], floatTolerance)
	// Rest length 0.5 equals the current distance, so the member settles
	// after its minimal one-tick countdown.
	assert.False(t, engine.Iterate(1))
}

func TestRemoveInterval_RenumbersCatalog(t *testing.T) {
	fab, engine := newFabric(t)
	joints, pulls := buildTriangle(fab)
	extra := fab.CreateInterval(joints[0], joints[2], fabric.RoleRing, geom.PercentFull)

	fab.RemoveInterval(pulls[1])

	require.Equal(t, 3, engine.MemberCount())
	require.Len(t, fab.Intervals(), 3)
	assert.True(t, pulls[1].Removed)
	// Every surviving index above the removed one shifts down, keeping
	// the catalog bijective with the engine's packed member array.
	assert.Equal(t, 0, pulls[0].Index)
	assert.Equal(t, 1, pulls[2].Index)
	assert.Equal(t, 2, extra.Index)

	// Removing twice is a no-op.
	fab.RemoveInterval(pulls[1])
	assert.Equal(t, 3, engine.MemberCount())
}

func TestFindInterval_EitherDirection(t *testing.T) {
	fab, _ := newFabric(t)
	joints, pulls := buildTriangle(fab)

	assert.Same(t, pulls[0], fab.FindInterval(joints[0], joints[1]))
	assert.Same(t, pulls[0], fab.FindInterval(joints[1], joints[0]))

	stranger := fab.CreateJointAt(v3.Vec{Y: 5})
	assert.Nil(t, fab.FindInterval(joints[0], stranger))
}

func TestCreateFace_ResolvesBoundaryPulls(t *testing.T) {
	fab, engine := newFabric(t)
	joints, pulls := buildTriangle(fab)

	face, err := fab.CreateFace(joints, false, fabric.SpinLeft, geom.PercentFull, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, face.Index)
	assert.Equal(t, 1, engine.FaceCount())
	require.Len(t, face.Pulls, 3)
	assert.Same(t, pulls[0], face.Pulls[0])
	assert.Same(t, pulls[1], face.Pulls[1])
	assert.Same(t, pulls[2], face.Pulls[2])
}

func TestCreateFace_PrefersNewestPull(t *testing.T) {
	fab, _ := newFabric(t)
	joints, pulls := buildTriangle(fab)
	// A fresh duplicate of the first edge, as a rebuild would create.
	fresh := fab.CreateInterval(joints[0], joints[1], fabric.RoleRing, geom.PercentFull)

	face, err := fab.CreateFace(joints, false, fabric.SpinLeft, geom.PercentFull, nil)
	require.NoError(t, err)

	assert.Same(t, fresh, face.Pulls[0])
	assert.NotSame(t, pulls[0], face.Pulls[0])
}

func TestCreateFace_MissingBoundary(t *testing.T) {
	fab, _ := newFabric(t)
	joints, pulls := buildTriangle(fab)
	fab.RemoveInterval(pulls[2])

	face, err := fab.CreateFace(joints, false, fabric.SpinLeft, geom.PercentFull, nil)
	assert.Nil(t, face)
	assert.ErrorIs(t, err, fabric.ErrFaceBoundary)
}

func TestCreateFace_TooFewEnds(t *testing.T) {
	fab, _ := newFabric(t)
	joints, _ := buildTriangle(fab)

	face, err := fab.CreateFace(joints[:2], false, fabric.SpinLeft, geom.PercentFull, nil)
	assert.Nil(t, face)
	assert.ErrorIs(t, err, fabric.ErrBadFaceSize)
}

func TestRemoveFace_RenumbersAndClearsAnchor(t *testing.T) {
	fab, engine := newFabric(t)
	jointsA, _ := buildTriangle(fab)
	jointsB, _ := buildTriangle(fab)
	faceA, err := fab.CreateFace(jointsA, false, fabric.SpinLeft, geom.PercentFull, nil)
	require.NoError(t, err)
	faceB, err := fab.CreateFace(jointsB, false, fabric.SpinRight, geom.PercentFull, nil)
	require.NoError(t, err)
	fab.SetAnchor(faceA)

	fab.RemoveFace(faceA, false)

	assert.True(t, faceA.Removed)
	assert.Nil(t, fab.Anchor())
	assert.Equal(t, 1, engine.FaceCount())
	assert.Equal(t, 0, faceB.Index)
	// Boundary pulls stay when withPulls is false.
	assert.Len(t, fab.Intervals(), 6)
}

func TestRemoveFace_WithPulls(t *testing.T) {
	fab, engine := newFabric(t)
	joints, _ := buildTriangle(fab)
	face, err := fab.CreateFace(joints, false, fabric.SpinLeft, geom.PercentFull, nil)
	require.NoError(t, err)

	fab.RemoveFace(face, true)

	assert.Empty(t, fab.Intervals())
	assert.Equal(t, 0, engine.MemberCount())
}

func TestRemoveScaffold(t *testing.T) {
	fab, _ := newFabric(t)
	joints, _ := buildTriangle(fab)
	hub := fab.CreateJointAt(v3.Vec{Y: 1})
	fab.CreateInterval(hub, joints[0], fabric.RoleRadialPull, geom.PercentFull)
	fab.CreateInterval(hub, joints[1], fabric.RoleConnectorPull, geom.PercentFull)
	fab.CreateInterval(hub, joints[2], fabric.RoleFaceConnector, geom.PercentFull)

	fab.RemoveScaffold()

	require.Len(t, fab.Intervals(), 3)
	for _, iv := range fab.Intervals() {
		assert.Equal(t, fabric.RoleTwistPull, iv.Role)
	}
}

func TestSettleToGround_LiftsWithoutAnchor(t *testing.T) {
	fab, _ := newFabric(t)
	low := fab.CreateJointAt(v3.Vec{Y: -3})
	high := fab.CreateJointAt(v3.Vec{Y: 2})

	fab.SettleToGround()

	assert.InDelta(t, 0, fab.Location(low).Y, floatTolerance)
	assert.InDelta(t, 5, fab.Location(high).Y, floatTolerance)
}

func TestSettleToGround_AlignsAnchor(t *testing.T) {
	fab, _ := newFabric(t)
	// A triangle tilted out of any ground-parallel plane.
	joints := []*fabric.Joint{
		fab.CreateJointAt(v3.Vec{X: 1, Y: 2, Z: 0}),
		fab.CreateJointAt(v3.Vec{X: -1, Y: 3, Z: 1}),
		fab.CreateJointAt(v3.Vec{X: 0, Y: 4, Z: -2}),
	}
	for i := range joints {
		fab.CreateInterval(joints[i], joints[(i+1)%3], fabric.RoleTwistPull, geom.PercentFull)
	}
	face, err := fab.CreateFace(joints, false, fabric.SpinLeft, geom.PercentFull, nil)
	require.NoError(t, err)
	fab.SetAnchor(face)

	fab.SettleToGround()

	// The base face lands flat at the configured altitude.
	altitude := fab.Features()(fabric.FeatureBaseAltitude)
	for _, j := range joints {
		assert.InDelta(t, altitude, fab.Location(j).Y, floatTolerance)
	}
	mid := fab.FaceMidpoint(face)
	assert.InDelta(t, 0, mid.X, floatTolerance)
	assert.InDelta(t, 0, mid.Z, floatTolerance)
}

func TestFaceGeometry(t *testing.T) {
	fab, _ := newFabric(t)
	joints, _ := buildTriangle(fab)
	face, err := fab.CreateFace(joints, false, fabric.SpinLeft, geom.PercentFull, nil)
	require.NoError(t, err)

	mid := fab.FaceMidpoint(face)
	assert.InDelta(t, 0.5, mid.X, floatTolerance)
	assert.InDelta(t, 1.0/3.0, mid.Z, floatTolerance)

	normal := fab.FaceNormal(face)
	assert.InDelta(t, 1, normal.Length(), floatTolerance)
	assert.InDelta(t, 0, normal.X, floatTolerance)
	assert.InDelta(t, 0, normal.Z, floatTolerance)
}
