// SPDX-License-Identifier: MIT
// Package: tensegra/instance
//
// memory.go — packed-array engine with countdown-interpolated ideal
// lengths and kinematic relaxation.

package instance

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/solwyrm/tensegra/geom"
)

// timeStep scales the per-tick displacement of relaxation.
const timeStep = 0.01

// member carries the engine-side attributes of one interval. The
// strain, stiffness, and ideal-length values live in the parallel
// arrays exposed by the query methods.
type member struct {
	alpha, omega  int
	push          bool
	start         float64 // ideal length at creation (or last re-target)
	rest          float64
	linearDensity float64
	countdown     int
	maxCountdown  int
	unit          v3.Vec
}

type memorySnapshot struct {
	joints      []v3.Vec
	members     []member
	strains     []float64
	stiffnesses []float64
	ideals      []float64
}

// Memory is an in-memory engine instance. The zero value is ready to use.
type Memory struct {
	joints      []v3.Vec
	members     []member
	strains     []float64
	stiffnesses []float64
	ideals      []float64
	faces       [][3]int
	saved       *memorySnapshot
}

// NewMemory returns an empty engine.
func NewMemory() *Memory { return &Memory{} }

// CreateJoint registers a point mass and returns its index.
func (m *Memory) CreateJoint(location v3.Vec) int {
	m.joints = append(m.joints, location)
	return len(m.joints) - 1
}

// CreateInterval registers a member and returns its index.
func (m *Memory) CreateInterval(alpha, omega int, push bool, idealLength, restLength, stiffness, linearDensity float64, countdown int) int {
	m.members = append(m.members, member{
		alpha:         alpha,
		omega:         omega,
		push:          push,
		start:         idealLength,
		rest:          restLength,
		linearDensity: linearDensity,
		countdown:     countdown,
		maxCountdown:  countdown,
	})
	m.strains = append(m.strains, 0)
	m.stiffnesses = append(m.stiffnesses, stiffness)
	m.ideals = append(m.ideals, idealLength)
	return len(m.members) - 1
}

// RemoveInterval removes a member, repacking all member arrays so that
// every greater index shifts down by one.
func (m *Memory) RemoveInterval(index int) {
	m.members = append(m.members[:index], m.members[index+1:]...)
	m.strains = append(m.strains[:index], m.strains[index+1:]...)
	m.stiffnesses = append(m.stiffnesses[:index], m.stiffnesses[index+1:]...)
	m.ideals = append(m.ideals[:index], m.ideals[index+1:]...)
}

// CreateFace registers a triangle and returns its index.
func (m *Memory) CreateFace(j0, j1, j2 int) int {
	m.faces = append(m.faces, [3]int{j0, j1, j2})
	return len(m.faces) - 1
}

// RemoveFace removes a face, repacking the face array.
func (m *Memory) RemoveFace(index int) {
	m.faces = append(m.faces[:index], m.faces[index+1:]...)
}

// JointLocation reports a joint's current position.
func (m *Memory) JointLocation(index int) v3.Vec { return m.joints[index] }

// SetJointLocation moves a joint directly. Tests and scripted drivers
// use this to stand in for force resolution.
func (m *Memory) SetJointLocation(index int, location v3.Vec) {
	m.joints[index] = location
}

// JointCount reports the number of registered joints.
func (m *Memory) JointCount() int { return len(m.joints) }

// MemberCount reports the number of live members.
func (m *Memory) MemberCount() int { return len(m.members) }

// FaceCount reports the number of live faces.
func (m *Memory) FaceCount() int { return len(m.faces) }

// Strains exposes the live strain array.
func (m *Memory) Strains() []float64 { return m.strains }

// Stiffnesses exposes the live stiffness array; writes through the
// returned slice take effect on the next tick.
func (m *Memory) Stiffnesses() []float64 { return m.stiffnesses }

// IdealLengths exposes the live ideal-length array.
func (m *Memory) IdealLengths() []float64 { return m.ideals }

// Midpoint reports the mean of all joint positions.
func (m *Memory) Midpoint() v3.Vec { return geom.Midpoint(m.joints...) }

// AdoptLengths commits every member's current physical length as its
// rest length and clears its countdown.
func (m *Memory) AdoptLengths() {
	for i := range m.members {
		mb := &m.members[i]
		length := m.joints[mb.omega].Sub(m.joints[mb.alpha]).Length()
		mb.rest = length
		mb.start = length
		mb.countdown = 0
		mb.maxCountdown = 0
		m.ideals[i] = length
	}
}

// Transform applies a rigid transform to every joint position.
func (m *Memory) Transform(apply geom.Transform) {
	for i := range m.joints {
		m.joints[i] = apply(m.joints[i])
	}
}

// Iterate advances relaxation by the given number of ticks and reports
// whether any member is still adopting its rest length.
func (m *Memory) Iterate(ticks int) bool {
	for t := 0; t < ticks; t++ {
		m.tick()
	}
	for i := range m.members {
		if m.members[i].countdown > 0 {
			return true
		}
	}
	return false
}

// tick runs one relaxation step over every member.
func (m *Memory) tick() {
	for i := range m.members {
		mb := &m.members[i]
		ideal := m.idealNow(i)
		span := m.joints[mb.omega].Sub(m.joints[mb.alpha])
		real := span.Length()
		if real == 0 || ideal == 0 {
			continue
		}
		mb.unit = span.DivScalar(real)
		strain := (real - ideal) / ideal
		m.strains[i] = strain
		displacement := mb.unit.MulScalar(strain * m.stiffnesses[i] * timeStep / 2)
		m.joints[mb.alpha] = m.joints[mb.alpha].Add(displacement)
		m.joints[mb.omega] = m.joints[mb.omega].Sub(displacement)
		if mb.countdown > 0 {
			mb.countdown--
		}
	}
}

// idealNow interpolates a member's ideal length from its creation
// length toward its rest length across the countdown window.
func (m *Memory) idealNow(index int) float64 {
	mb := &m.members[index]
	if mb.countdown == 0 || mb.maxCountdown == 0 {
		m.ideals[index] = mb.rest
		return mb.rest
	}
	progress := float64(mb.maxCountdown-mb.countdown) / float64(mb.maxCountdown)
	ideal := mb.start*(1-progress) + mb.rest*progress
	m.ideals[index] = ideal
	return ideal
}

// Snapshot captures the full engine state.
func (m *Memory) Snapshot() {
	m.saved = &memorySnapshot{
		joints:      append([]v3.Vec(nil), m.joints...),
		members:     append([]member(nil), m.members...),
		strains:     append([]float64(nil), m.strains...),
		stiffnesses: append([]float64(nil), m.stiffnesses...),
		ideals:      append([]float64(nil), m.ideals...),
	}
}

// RestoreSnapshot rewinds to the captured state; without a prior
// Snapshot it does nothing.
func (m *Memory) RestoreSnapshot() {
	if m.saved == nil {
		return
	}
	m.joints = append(m.joints[:0], m.saved.joints...)
	m.members = append(m.members[:0], m.saved.members...)
	m.strains = append(m.strains[:0], m.saved.strains...)
	m.stiffnesses = append(m.stiffnesses[:0], m.saved.stiffnesses...)
	m.ideals = append(m.ideals[:0], m.saved.ideals...)
}
