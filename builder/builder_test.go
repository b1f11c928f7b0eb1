package builder_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/require"

	"github.com/solwyrm/tensegra/builder"
	"github.com/solwyrm/tensegra/fabric"
	"github.com/solwyrm/tensegra/geom"
	"github.com/solwyrm/tensegra/instance"
)

// newBuilder wires a builder over a fresh fabric and in-memory engine.
func newBuilder(t *testing.T) (*builder.Builder, *fabric.Fabric, *instance.Memory) {
	t.Helper()
	engine := instance.NewMemory()
	fab, err := fabric.New(engine)
	require.NoError(t, err)
	return builder.New(fab), fab, engine
}

// countRoles tallies the live interval catalog by role.
func countRoles(fab *fabric.Fabric) map[fabric.Role]int {
	counts := map[fabric.Role]int{}
	for _, iv := range fab.Intervals() {
		counts[iv.Role]++
	}
	return counts
}

// barePulledFace builds a triangle of pulls with no pushes behind it,
// which no ring connection can attach to.
func barePulledFace(t *testing.T, fab *fabric.Fabric, offset v3.Vec) *fabric.Face {
	t.Helper()
	joints := []*fabric.Joint{
		fab.CreateJointAt(offset),
		fab.CreateJointAt(offset.Add(v3.Vec{X: 1})),
		fab.CreateJointAt(offset.Add(v3.Vec{X: 0.5, Z: 1})),
	}
	for i := range joints {
		fab.CreateInterval(joints[i], joints[(i+1)%3], fabric.RoleTwistPull, geom.PercentFull)
	}
	face, err := fab.CreateFace(joints, false, fabric.SpinLeft, geom.PercentFull, nil)
	require.NoError(t, err)
	return face
}
