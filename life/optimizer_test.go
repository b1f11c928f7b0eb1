package life_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"

	"github.com/solwyrm/tensegra/fabric"
	"github.com/solwyrm/tensegra/geom"
	"github.com/solwyrm/tensegra/instance"
	"github.com/solwyrm/tensegra/life"
)

// pulledPair registers an isolated unit-length member of the given role.
type pulledPair struct {
	iv     *fabric.Interval
	origin v3.Vec
	omega  *fabric.Joint
}

func newPulledPair(fab *fabric.Fabric, role fabric.Role, origin v3.Vec) pulledPair {
	a := fab.CreateJointAt(origin)
	b := fab.CreateJointAt(origin.Add(v3.Vec{X: 1}))
	return pulledPair{iv: fab.CreateInterval(a, b, role, geom.PercentFull), origin: origin, omega: b}
}

// stretch moves the pair's far joint so the member spans length; with
// rest length 1 adopted, the next tick observes strain (length - 1).
func (p pulledPair) stretch(engine *instance.Memory, length float64) {
	engine.SetJointLocation(p.omega.Index, p.origin.Add(v3.Vec{X: length}))
}

func TestStrainToStiffness_RedistributesProportionally(t *testing.T) {
	fab, engine := newFabric(t)
	tight := newPulledPair(fab, fabric.RoleTwistPull, v3.Vec{Y: 1})
	loose := newPulledPair(fab, fabric.RoleRing, v3.Vec{Y: 1, Z: 3})
	engine.AdoptLengths()
	tight.stretch(engine, 1.2)
	loose.stretch(engine, 1.1)
	engine.Iterate(1)

	adjusted := life.StrainToStiffness(fab)

	assert.Equal(t, 2, adjusted)
	stiffnesses := engine.Stiffnesses()
	// Strains 0.2 and 0.1 against their 0.15 average.
	assert.InDelta(t, 0.2/0.15, stiffnesses[tight.iv.Index], 1e-6)
	assert.InDelta(t, 0.1/0.15, stiffnesses[loose.iv.Index], 1e-6)
}

func TestStrainToStiffness_Exclusions(t *testing.T) {
	fab, engine := newFabric(t)
	qualifying := newPulledPair(fab, fabric.RoleTwistPull, v3.Vec{Y: 1})
	push := newPulledPair(fab, fabric.RoleRootPush, v3.Vec{Y: 1, Z: 3})
	scaffold := newPulledPair(fab, fabric.RoleRadialPull, v3.Vec{Y: 1, Z: 6})
	grounded := newPulledPair(fab, fabric.RoleTwistPull, v3.Vec{})
	engine.AdoptLengths()
	for _, pair := range []pulledPair{qualifying, push, scaffold, grounded} {
		pair.stretch(engine, 1.2)
	}
	engine.Iterate(1)

	adjusted := life.StrainToStiffness(fab)

	// Only the airborne non-scaffold pull qualifies.
	assert.Equal(t, 1, adjusted)
	stiffnesses := engine.Stiffnesses()
	assert.InDelta(t, 1.0, stiffnesses[push.iv.Index], 1e-9)
	assert.InDelta(t, 1.0, stiffnesses[scaffold.iv.Index], 1e-9)
	assert.InDelta(t, 1.0, stiffnesses[grounded.iv.Index], 1e-9)
}

func TestStrainToStiffness_EmptyFabric(t *testing.T) {
	fab, _ := newFabric(t)
	assert.Equal(t, 0, life.StrainToStiffness(fab))
}
