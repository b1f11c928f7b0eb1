// Package instance provides Memory, a reference in-memory
// implementation of the fabric.Instance engine boundary.
//
// What:
//
//   - Packed joint/member/face arrays with repack-on-remove semantics,
//     exactly the contract the structure graph renumbers against
//   - Kinematic spring relaxation: each tick computes every member's
//     strain against its countdown-interpolated ideal length and nudges
//     the endpoints along the member's unit vector
//   - Rest-length adoption, rigid transforms, snapshot/restore
//
// Why:
//   - The topology core never simulates forces itself; tests and the
//     CLI still need positions that respond to structure, and Memory
//     supplies that without an external engine
//
// Memory is not a physics engine: there is no mass, damping, or
// gravity. A member's ideal length interpolates from its creation
// length to its rest length over a countdown of ticks; strain is
// (real − ideal) / ideal and displacement is proportional to
// strain × stiffness.
//
// Concurrency: none. Memory is mutated from the single simulation tick.
package instance
