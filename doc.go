// Package tensegra grows tensegrity structures procedurally: a small
// growth grammar drives a topology builder that emits joints, push and
// pull members, and faces into a physics engine instance, then steers
// the result through a shaping and pretensioning lifecycle.
//
// 🚀 What is tensegra?
//
//	A procedural tensegrity-topology toolkit built around a handful of
//	cooperating packages:
//		• Twists: triangular helical units, plain or omni, grown one on
//		  another and fused by ring matching
//		• Tenscript: the instruction grammar — forward counts, scaled
//		  subtrees, branches on named faces, and deferred face marks
//		• Pull complexes: temporary hub-and-spoke scaffolds that draw
//		  marked faces together until they connect rigidly
//		• Lifecycle: Growing → Shaping → Slack → Pretensing → Pretenst,
//		  with rest-length adoption and strain-driven stiffness tuning
//
// ✨ Why choose tensegra?
//
//   - Deterministic – every builder operation is a pure function of its
//     inputs and an explicit feature table
//   - Engine-agnostic – the structure graph talks to any physics backend
//     through one narrow interface; a reference in-memory engine ships
//     in instance/
//   - Cooperative – the interpreter performs one unit of work per tick,
//     so growth interleaves cleanly with simulation
//
// Everything is organized under these subpackages:
//
//	geom/      — stateless vector helpers: rings, normals, transforms
//	fabric/    — the structure graph: joints, intervals, faces, features
//	instance/  — reference in-memory physics engine
//	builder/   — twists, ring connections, pull complexes, tips
//	life/      — lifecycle stages and the strain-to-stiffness optimizer
//	tenscript/ — grammar parser and the cooperative runner
//	cmd/       — the tensegra CLI: grow a program, export a snapshot
//
// Quick tenscript example:
//
//	(2,S90,b(2,MA0),c(2,MA0)):0=join
//
//	grows a two-twist trunk at 90% scale with two marked branches, then
//	pulls the marked faces together into one rigid connection.
//
//	go get github.com/solwyrm/tensegra
package tensegra
