// Package fabric owns the canonical structure graph of a tensegrity: the
// flat catalogs of joints, intervals (push/pull members), and polygonal
// faces, together with the invariant-preserving mutators that keep those
// catalogs aligned with the external physics engine.
//
// What:
//
//   - Fabric: the structure graph; sole mutator of the engine instance
//   - Joint / Interval / Face: shared handles, each carrying the single
//     authoritative live index into the engine's packed arrays
//   - Role / Spin: closed enumerations driving default lengths,
//     stiffness derivation, and helical handedness
//   - FeatureFn: explicit numeric-feature lookup passed into every
//     component (no ambient globals)
//   - Snapshot: serializable export of the current structure
//
// Why:
//   - One package enforces the index bijection invariant: the ordered
//     interval indices always map 1:1 onto the engine's live member
//     list; removing interval k decrements every greater index by one,
//     mirroring the engine's array repacking
//   - Faces resolve their boundary pulls through a most-recent-first
//     interval search, so freshly rebuilt members shadow stale
//     duplicates
//
// Errors:
//
//   - ErrFaceBoundary — a face's boundary pull cannot be found; a
//     construction invariant violation, fatal by contract
//   - ErrBadFaceSize  — a face needs at least three ends
//   - ErrNilInstance  — the fabric was constructed without an engine
//
// Concurrency: none required. The fabric is mutated from a single
// simulation tick (see the tenscript runner); the engine instance is
// accessed only through this package plus read-only queries.
package fabric
