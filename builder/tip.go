// SPDX-License-Identifier: MIT
// Package: tensegra/builder
//
// tip.go — face capping: a push along the face normal with inner and
// outer pull fans.

package builder

import (
	"github.com/solwyrm/tensegra/fabric"
	"github.com/solwyrm/tensegra/geom"
)

// CreateTipOn caps a face with a tip: a base joint at the face
// midpoint, a point joint lifted along the outward normal, a push
// between them, and inner/outer pull fans to the face corners. The tip
// substructure is recorded on the face and returned.
func (b *Builder) CreateTipOn(face *fabric.Face, scale float64) *fabric.Tip {
	factor := geom.PercentToFactor(scale)
	midpoint := b.fab.FaceMidpoint(face)
	normal := b.fab.FaceNormal(face)

	base := b.fab.CreateJointAt(midpoint)
	point := b.fab.CreateJointAt(midpoint.Add(normal.MulScalar(fabric.RoleTipPush.DefaultLength() * factor)))

	tip := &fabric.Tip{
		Base:  base,
		Point: point,
		Push:  b.fab.CreateInterval(base, point, fabric.RoleTipPush, scale),
	}
	for _, end := range face.Ends {
		tip.Intervals = append(tip.Intervals,
			b.fab.CreateInterval(base, end, fabric.RoleTipInner, scale),
			b.fab.CreateInterval(point, end, fabric.RoleTipOuter, scale),
		)
	}
	face.Tip = tip
	return tip
}
