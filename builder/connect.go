// SPDX-License-Identifier: MIT
// Package: tensegra/builder
//
// connect.go — ring matching: the generalized face-to-face connection.
// One formula covers twist-to-twist, twist-to-omni, omni-to-twist, and
// omni-to-omni by varying only the role table and the spin-dependent
// index choice.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/solwyrm/tensegra/fabric"
)

// ConnectFaces joins two faces of equal corner count with a rotation-
// aligned ring of members and removes both faces (keeping their ring
// pulls, which become junction face edges). Only when neither face
// carries the omni marker does it also synthesize the 2n junction
// faces; any connection touching an omni face leaves the seam bare.
//
// Stages:
//  1. Rotate faceB's ring so corresponding corners are nearest.
//  2. Build the four parallel joint sequences a, b, c, d.
//  3. Emit 2 ring members, 1 down member, 1 up member per position.
//  4. Synthesize junction faces (plain faces only), then remove both
//     original faces.
func (b *Builder) ConnectFaces(faceA, faceB *fabric.Face) ([]*fabric.Face, error) {
	n := len(faceA.Ends)
	if n != len(faceB.Ends) {
		return nil, fmt.Errorf("ConnectFaces: %d vs %d corners: %w", n, len(faceB.Ends), ErrRingMismatch)
	}
	b.alignRings(faceA, faceB)

	// b = A's ends reversed; a = their across-push partners;
	// c = B's ends forward; d = their across-push partners.
	bSeq := reverseJoints(faceA.Ends)
	aSeq, err := b.acrossPushes(bSeq)
	if err != nil {
		return nil, err
	}
	cSeq := append([]*fabric.Joint(nil), faceB.Ends...)
	dSeq, err := b.acrossPushes(cSeq)
	if err != nil {
		return nil, err
	}

	ringRole, downRole, upRole := connectionRoles(faceA.Omni, faceB.Omni)
	scale := (faceA.Scale + faceB.Scale) / 2

	for i := 0; i < n; i++ {
		next := (i + 1) % n
		b.fab.CreateInterval(bSeq[i], cSeq[i], ringRole, scale)
		b.fab.CreateInterval(cSeq[i], bSeq[next], ringRole, scale)

		downTarget := aSeq[i]
		if faceA.Spin == fabric.SpinLeft {
			downTarget = aSeq[next]
		}
		b.fab.CreateInterval(cSeq[i], downTarget, downRole, scale)

		upSource := bSeq[i]
		if faceB.Spin == fabric.SpinLeft {
			upSource = bSeq[next]
		}
		b.fab.CreateInterval(upSource, dSeq[i], upRole, scale)
	}

	var junction []*fabric.Face
	if !faceA.Omni && !faceB.Omni {
		junction = make([]*fabric.Face, 0, 2*n)
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			// Lower face hugs A's old ring, upper face hugs B's; each
			// winding branches on the owning face's spin to keep the
			// outward-normal convention regardless of handedness.
			lowerEnds := []*fabric.Joint{bSeq[i], bSeq[next], cSeq[i]}
			if faceA.Spin == fabric.SpinRight {
				lowerEnds = []*fabric.Joint{bSeq[next], bSeq[i], cSeq[i]}
			}
			lower, faceErr := b.fab.CreateFace(lowerEnds, false, faceA.Spin.Opposite(), scale, nil)
			if faceErr != nil {
				return nil, faceErr
			}
			upperEnds := []*fabric.Joint{cSeq[next], cSeq[i], bSeq[next]}
			if faceB.Spin == fabric.SpinRight {
				upperEnds = []*fabric.Joint{cSeq[i], cSeq[next], bSeq[next]}
			}
			upper, faceErr := b.fab.CreateFace(upperEnds, false, faceB.Spin.Opposite(), scale, nil)
			if faceErr != nil {
				return nil, faceErr
			}
			junction = append(junction, lower, upper)
		}
	}

	b.fab.RemoveFace(faceA, false)
	b.fab.RemoveFace(faceB, false)
	b.log.Debug("faces connected",
		zap.Int("corners", n),
		zap.Stringer("ringRole", ringRole),
		zap.Int("junctionFaces", len(junction)),
	)
	return junction, nil
}

// connectionRoles selects the {ring, down, up} role triple from the two
// faces' omni markers.
func connectionRoles(aOmni, bOmni bool) (ring, down, up fabric.Role) {
	switch {
	case !aOmni && !bOmni:
		return fabric.RoleRing, fabric.RoleInterTwist, fabric.RoleInterTwist
	case aOmni && !bOmni:
		return fabric.RoleRing, fabric.RoleCross, fabric.RoleInterTwist
	case !aOmni && bOmni:
		return fabric.RoleRing, fabric.RoleInterTwist, fabric.RoleCross
	default:
		return fabric.RoleCross, fabric.RoleCross, fabric.RoleCross
	}
}

// acrossPushes maps each joint to the opposite end of its push member.
func (b *Builder) acrossPushes(joints []*fabric.Joint) ([]*fabric.Joint, error) {
	across := make([]*fabric.Joint, len(joints))
	for i, j := range joints {
		partner := b.pushPartner(j)
		if partner == nil {
			return nil, fmt.Errorf("acrossPushes: joint %d has no push: %w", j.Index, ErrDegenerateTwist)
		}
		across[i] = partner
	}
	return across, nil
}

// pushPartner returns the joint across j's push member, or nil.
func (b *Builder) pushPartner(j *fabric.Joint) *fabric.Joint {
	for _, iv := range b.fab.Intervals() {
		if iv.Role.Push() && iv.Touches(j) {
			return iv.OtherEnd(j)
		}
	}
	return nil
}

// alignRings rotates faceB's ring to the offset whose corners sit
// nearest faceA's reversed corners, so the connection does not shear.
func (b *Builder) alignRings(faceA, faceB *fabric.Face) {
	n := len(faceA.Ends)
	reversedA := reverseJoints(faceA.Ends)
	bestOffset, bestCost := 0, 0.0
	for offset := 0; offset < n; offset++ {
		cost := 0.0
		for i := 0; i < n; i++ {
			delta := b.fab.Location(reversedA[i]).Sub(b.fab.Location(faceB.Ends[(i+offset)%n]))
			cost += delta.Length2()
		}
		if offset == 0 || cost < bestCost {
			bestOffset, bestCost = offset, cost
		}
	}
	if bestOffset == 0 {
		return
	}
	rotated := make([]*fabric.Joint, n)
	for i := range faceB.Ends {
		rotated[i] = faceB.Ends[(i+bestOffset)%n]
	}
	faceB.Ends = rotated
}
