// SPDX-License-Identifier: MIT
// Package: tensegra/builder
//
// twist.go — construction of the basic helical unit, plain and omni.

package builder

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"go.uber.org/zap"

	"github.com/solwyrm/tensegra/fabric"
	"github.com/solwyrm/tensegra/geom"
)

// CreateTwistAt builds a twist around location with the given spin and
// scale (percent). For omni, two twists are built back-to-back and
// fused; the surviving end faces carry the omni marker.
func (b *Builder) CreateTwistAt(location v3.Vec, spin fabric.Spin, scale float64, omni bool) (*Twist, error) {
	factor := geom.PercentToFactor(scale)
	pushRole := fabric.RoleRootPush
	if omni {
		pushRole = fabric.RolePhiPush
	}
	edge := fabric.RoleTwistPull.DefaultLength() * factor
	radius := edge / (2 * math.Sin(math.Pi/PushesPerTwist))
	base := geom.RadialRing(location, v3.Vec{Y: 1}, radius, PushesPerTwist)
	up := v3.Vec{Y: pushRole.DefaultLength() * factor}
	if omni {
		return b.createOmniTwist(base, up, spin, scale)
	}
	return b.createTwist(base, up, spin, scale, pushRole)
}

// CreateTwistOn grows a new twist from an existing face and connects it
// to that face; the base face (and the new twist's near face) are
// consumed by the connection. The new twist continues the face's spin.
func (b *Builder) CreateTwistOn(face *fabric.Face, scale float64, omni bool) (*Twist, error) {
	pushRole := fabric.RoleRootPush
	if omni {
		pushRole = fabric.RolePhiPush
	}
	factor := geom.PercentToFactor(scale)
	base := reverseLocations(b.fab.FaceLocations(face))
	up := b.fab.FaceNormal(face).MulScalar(pushRole.DefaultLength() * factor)

	var twist *Twist
	var err error
	if omni {
		twist, err = b.createOmniTwist(base, up, face.Spin, scale)
	} else {
		twist, err = b.createTwist(base, up, face.Spin, scale, pushRole)
	}
	if err != nil {
		return nil, err
	}
	junction, err := b.ConnectFaces(face, twist.NearFace())
	if err != nil {
		return nil, err
	}
	twist.Faces = append(twist.Faces, junction...)
	return twist, nil
}

// createTwist builds one plain helical unit: alphas on the base ring,
// omegas lifted along up, one push per pair, two end polygons, and n
// helical diagonals whose offset encodes the handedness (n-1 for left
// spin, 1 for right).
func (b *Builder) createTwist(base []v3.Vec, up v3.Vec, spin fabric.Spin, scale float64, pushRole fabric.Role) (*Twist, error) {
	n := len(base)
	alphas := make([]*fabric.Joint, n)
	omegas := make([]*fabric.Joint, n)
	for i, point := range base {
		alphas[i] = b.fab.CreateJointAt(point)
		omegas[i] = b.fab.CreateJointAt(point.Add(up))
	}

	twist := &Twist{Spin: spin, Scale: scale}
	for i := 0; i < n; i++ {
		twist.Pushes = append(twist.Pushes, b.fab.CreateInterval(alphas[i], omegas[i], pushRole, scale))
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		twist.Pulls = append(twist.Pulls, b.fab.CreateInterval(alphas[i], alphas[next], fabric.RoleTwistPull, scale))
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		twist.Pulls = append(twist.Pulls, b.fab.CreateInterval(omegas[i], omegas[next], fabric.RoleTwistPull, scale))
	}
	offset := 1
	if spin == fabric.SpinLeft {
		offset = n - 1
	}
	for i := 0; i < n; i++ {
		diagonal := b.fab.CreateInterval(alphas[i], omegas[(i+offset)%n], fabric.RoleTwistPull, scale)
		twist.Pulls = append(twist.Pulls, diagonal)
	}

	// End faces wind with outward normals: the near face reverses the
	// base ring. A helix shows opposite handedness from its two ends,
	// so the near face carries the opposite spin tag.
	near, err := b.fab.CreateFace(reverseJoints(alphas), false, spin.Opposite(), scale, nil)
	if err != nil {
		return nil, err
	}
	far, err := b.fab.CreateFace(omegas, false, spin, scale, nil)
	if err != nil {
		return nil, err
	}
	twist.Faces = []*fabric.Face{near, far}
	b.log.Debug("twist created",
		zap.Stringer("spin", spin),
		zap.Float64("scale", scale),
		zap.Stringer("pushRole", pushRole),
	)
	return twist, nil
}

// createOmniTwist fuses two twists built back-to-back: the top twist
// rises from the bottom's far face, the facing faces are consumed by
// the ring connection (which synthesizes the 2n junction faces), and
// the two surviving end faces are marked omni.
func (b *Builder) createOmniTwist(base []v3.Vec, up v3.Vec, spin fabric.Spin, scale float64) (*Twist, error) {
	bottom, err := b.createTwist(base, up, spin, scale, fabric.RolePhiPush)
	if err != nil {
		return nil, err
	}
	seam := bottom.FarFace()
	factor := geom.PercentToFactor(scale)
	topBase := reverseLocations(b.fab.FaceLocations(seam))
	topUp := b.fab.FaceNormal(seam).MulScalar(fabric.RolePhiPush.DefaultLength() * factor)
	top, err := b.createTwist(topBase, topUp, seam.Spin, scale, fabric.RolePhiPush)
	if err != nil {
		return nil, err
	}
	junction, err := b.ConnectFaces(seam, top.NearFace())
	if err != nil {
		return nil, err
	}

	near, far := bottom.NearFace(), top.FarFace()
	near.Omni = true
	far.Omni = true
	omni := &Twist{
		Spin:   spin,
		Omni:   true,
		Scale:  scale,
		Pushes: append(append([]*fabric.Interval(nil), bottom.Pushes...), top.Pushes...),
		Pulls:  append(append([]*fabric.Interval(nil), bottom.Pulls...), top.Pulls...),
		Faces:  append([]*fabric.Face{near, far}, junction...),
	}
	return omni, nil
}

func reverseJoints(joints []*fabric.Joint) []*fabric.Joint {
	reversed := make([]*fabric.Joint, len(joints))
	for i, j := range joints {
		reversed[len(joints)-1-i] = j
	}
	return reversed
}

func reverseLocations(points []v3.Vec) []v3.Vec {
	reversed := make([]v3.Vec, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}
