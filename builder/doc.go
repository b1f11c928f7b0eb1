// Package builder constructs tensegrity topology on a fabric.Fabric:
// twists, twist-on-face growth, omni fusion, face-to-face ring
// connections, radial pull complexes, and face tips.
//
// What:
//
//   - CreateTwistAt: the basic helical unit — n radial push pairs, two
//     end polygons, n helical diagonals; omni builds two twists
//     back-to-back and fuses them
//   - CreateTwistOn: grows a twist from an existing face and connects
//     it, consuming the base face
//   - ConnectFaces: the ring-matching algorithm — four parallel joint
//     sequences (across/reversed/forward/across), two ring members, one
//     up and one down member per position, junction face synthesis for
//     plain connections, and rotational alignment beforehand
//   - CreateRadialPulls / CheckConnectors: hub-and-spoke scaffolds that
//     draw faces together under the engine's own force resolution until
//     the hub distance crosses the convergence threshold, at which
//     point the scaffold is swapped for a rigid ring connection
//   - CreateTipOn: caps a face with a push along its normal plus
//     inner/outer pull fans
//
// Why:
//   - One generalized connection routine covers twist-to-twist,
//     twist-to-omni, omni-to-twist, and omni-to-omni by varying only
//     the role table and the spin-dependent index choice
//
// Errors:
//
//   - ErrRingMismatch    — connecting faces of unequal corner counts
//   - ErrDegenerateTwist — a joint has no push partner during ring
//     matching (the twist it belongs to is malformed)
//   - ErrFaceCount       — a join action needs two or three faces
//
// All errors are construction invariant violations: fatal, never
// retried. The builder holds no state beyond the fabric it operates on;
// every constructor is one atomic unit of structural work.
package builder
