// Package tenscript parses and executes the structural growth grammar:
// a small instruction tree that tells the topology builder how to grow,
// branch, and mark a tensegrity, one unit of work per simulation tick.
//
// Grammar:
//
//	program := tree markdef*
//	tree    := "(" item ("," item)* ")"
//	item    := INT            grow that many twists forward
//	         | "S" INT        scale percent for this subtree
//	         | FACE tree      branch: grow the subtree on that face
//	         | "M" FACE INT   attach mark INT to that face
//	markdef := ":" INT "=" ("join" | "distance-" INT | "base")
//
// Face aliases: 'A' far end, 'a' near end, 'b'/'c'/'d' lower junction
// faces, 'B'/'C'/'D' upper junction faces. Example:
//
//	(2,S90,b(2,MA0),c(2,MA0)):0=join
//
// grows a two-twist trunk at 90% scale, two marked branches, and joins
// the marked faces once growth completes.
//
// Execution:
//
//   - Runner consumes the tree cooperatively: each Iterate call applies
//     one queued lifecycle transition, or grows one twist, or executes
//     the deferred mark strategies, or runs one convergence check over
//     the outstanding pull complexes — never more
//   - A lone marked face becomes the base anchor used for ground
//     alignment; faces sharing a mark are joined or distance-connected
//     through radial pull complexes
//   - When the last bud is consumed the Runner queues the
//     Growing→Shaping transition
//
// Errors:
//
//   - ErrSyntax          — malformed program text
//   - ErrFaceUnavailable — an alias names a face the last twist does
//     not expose (e.g. a junction alias on a plain twist)
//   - ErrUnknownMark     — a markdef references a mark never attached
//
// The Runner retains all resumable state (pending buds, mark registry,
// outstanding complexes, queued transitions); suspension is simply
// returning after one unit of work.
package tenscript
