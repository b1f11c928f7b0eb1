// SPDX-License-Identifier: MIT
// Package: tensegra/fabric
//
// snapshot.go — serializable export of the current structure. The wire
// format beyond these JSON tags is the consumer's concern.

package fabric

import "github.com/google/uuid"

// JointSnapshot is one exported point mass.
type JointSnapshot struct {
	Index    int     `json:"index"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Radius   float64 `json:"radius"`
	Anchored bool    `json:"anchored"`
}

// IntervalSnapshot is one exported member.
type IntervalSnapshot struct {
	Index     int     `json:"index"`
	Alpha     int     `json:"alpha"`
	Omega     int     `json:"omega"`
	Role      string  `json:"role"`
	Push      bool    `json:"push"`
	Strain    float64 `json:"strain"`
	Stiffness float64 `json:"stiffness"`
	Length    float64 `json:"length"`
}

// Snapshot is a point-in-time export of the whole structure.
type Snapshot struct {
	ID        string             `json:"id"`
	Joints    []JointSnapshot    `json:"joints"`
	Intervals []IntervalSnapshot `json:"intervals"`
}

// jointRadius is the default export radius of a point mass.
const jointRadius = 0.01

// Snapshot exports per-joint positions and per-interval endpoint,
// role, strain, stiffness, and current length. The export is tagged
// with a fresh UUID so downstream consumers can correlate files.
func (f *Fabric) Snapshot() *Snapshot {
	snapshot := &Snapshot{
		ID:        uuid.NewString(),
		Joints:    make([]JointSnapshot, 0, len(f.joints)),
		Intervals: make([]IntervalSnapshot, 0, len(f.intervals)),
	}
	anchored := map[*Joint]bool{}
	if f.anchor != nil {
		for _, end := range f.anchor.Ends {
			anchored[end] = true
		}
	}
	for _, j := range f.joints {
		location := f.Location(j)
		snapshot.Joints = append(snapshot.Joints, JointSnapshot{
			Index:    j.Index,
			X:        location.X,
			Y:        location.Y,
			Z:        location.Z,
			Radius:   jointRadius,
			Anchored: anchored[j],
		})
	}
	strains := f.instance.Strains()
	stiffnesses := f.instance.Stiffnesses()
	for _, iv := range f.intervals {
		length := f.Location(iv.Omega).Sub(f.Location(iv.Alpha)).Length()
		snapshot.Intervals = append(snapshot.Intervals, IntervalSnapshot{
			Index:     iv.Index,
			Alpha:     iv.Alpha.Index,
			Omega:     iv.Omega.Index,
			Role:      iv.Role.String(),
			Push:      iv.Role.Push(),
			Strain:    strains[iv.Index],
			Stiffness: stiffnesses[iv.Index],
			Length:    length,
		})
	}
	return snapshot
}
