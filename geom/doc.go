// Package geom provides the pure geometry utilities shared by the
// tensegrity core: midpoints, triangle normals, radial ring points,
// percent↔factor scale conversion, and the rigid transform that settles
// a structure onto the ground plane.
//
// What:
//
//   - Midpoint(points...): arithmetic mean of a point set
//   - Normal(a, b, c): unit normal of an ordered triangle
//   - RadialRing(center, up, radius, n): n points evenly spaced around
//     center in the plane perpendicular to up
//   - PercentToFactor / FactorToPercent: scale conversions (100% ⇄ 1.0)
//   - GroundTransform(midpoint, normal, altitude): rigid transform that
//     moves midpoint to the origin, turns normal to point straight down,
//     and lifts the result by altitude
//
// Why:
//   - Keep the topology builder free of ad-hoc vector arithmetic
//   - Make every geometric rule testable without a structure graph
//
// All functions are stateless and deterministic. Vectors are
// v3.Vec values from github.com/deadsy/sdfx/vec/v3.
//
// Complexity: every function is O(n) in its input point count or O(1).
package geom
