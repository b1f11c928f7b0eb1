// SPDX-License-Identifier: MIT
// Package: tensegra/tenscript
//
// runner.go — cooperative interpreter: one unit of structural work per
// external tick, with all resumable state held on the Runner.

package tenscript

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"go.uber.org/zap"

	"github.com/solwyrm/tensegra/builder"
	"github.com/solwyrm/tensegra/fabric"
	"github.com/solwyrm/tensegra/geom"
	"github.com/solwyrm/tensegra/life"
)

// bud is one pending unit of growth: where to grow, the twist aliases
// resolve against, the remaining instructions, and the effective scale.
type bud struct {
	face  *fabric.Face
	twist *builder.Twist
	node  *Node
	scale float64
}

// Runner executes a parsed program cooperatively against one fabric.
type Runner struct {
	program *Program
	fab     *fabric.Fabric
	bld     *builder.Builder
	current life.Life
	log     *zap.Logger

	buds      []*bud
	marks     map[int][]*fabric.Face
	markOrder []int
	marksDone bool
	complexes []*builder.PullComplex
	pending   []life.Transition
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger attaches a structured logger; the default is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// NewRunner seeds the structure with its first twist at the origin and
// queues the program's root node as the initial bud. The seed twist is
// omni when the root addresses junction faces without growing forward.
func NewRunner(program *Program, fab *fabric.Fabric, bld *builder.Builder, opts ...Option) (*Runner, error) {
	r := &Runner{
		program: program,
		fab:     fab,
		bld:     bld,
		current: life.NewLife(),
		log:     zap.NewNop(),
		marks:   map[int][]*fabric.Face{},
	}
	for _, opt := range opts {
		opt(r)
	}
	scale := effectiveScale(geom.PercentFull, program.Root)
	omniSeed := program.Root.Forward == 0 && program.Root.NeedsOmni()
	seed, err := bld.CreateTwistAt(v3.Vec{}, fabric.SpinLeft, scale, omniSeed)
	if err != nil {
		return nil, err
	}
	r.buds = []*bud{{face: seed.FarFace(), twist: seed, node: program.Root, scale: scale}}
	return r, nil
}

// Life reports the current lifecycle token.
func (r *Runner) Life() life.Life { return r.current }

// Complexes reports the outstanding pull complexes.
func (r *Runner) Complexes() []*builder.PullComplex { return r.complexes }

// RequestStage queues a lifecycle transition; it is applied at the
// start of a subsequent Iterate call, never immediately.
func (r *Runner) RequestStage(t life.Transition) {
	r.pending = append(r.pending, t)
}

// Done reports whether all growth, mark strategies, convergence
// checks, and queued transitions have completed.
func (r *Runner) Done() bool {
	return len(r.buds) == 0 && r.marksDone && len(r.complexes) == 0 && len(r.pending) == 0
}

// Iterate performs at most one unit of work: a queued transition, one
// bud, the deferred mark strategies, or one convergence sweep. It
// reports whether the runner is done.
func (r *Runner) Iterate() (bool, error) {
	switch {
	case len(r.pending) > 0:
		transition := r.pending[0]
		r.pending = r.pending[1:]
		next, err := r.current.WithStage(r.fab, transition)
		if err != nil {
			return false, err
		}
		r.current = next

	case len(r.buds) > 0:
		next := r.buds[0]
		r.buds = r.buds[1:]
		if err := r.executeBud(next); err != nil {
			return false, err
		}

	case !r.marksDone:
		if err := r.executeMarks(); err != nil {
			return false, err
		}
		r.marksDone = true
		r.RequestStage(life.Transition{Stage: life.Shaping})

	case len(r.complexes) > 0:
		active, err := r.bld.CheckConnectors(r.complexes, r.fab.RemoveInterval)
		if err != nil {
			return false, err
		}
		r.complexes = active
	}
	return r.Done(), nil
}

// executeBud grows one twist forward, or — when the node's forward
// count is spent — registers its marks and fans out its branch buds.
func (r *Runner) executeBud(current *bud) error {
	node := current.node
	if current.face.Removed {
		// Two branches resolved onto the same face; the first consumed it.
		return fmt.Errorf("growing: face already consumed: %w", ErrFaceUnavailable)
	}
	if node.Forward > 0 {
		// The last forward twist turns omni when side branches or side
		// marks need its junction faces.
		omni := node.Forward == 1 && node.NeedsOmni()
		twist, err := r.bld.CreateTwistOn(current.face, current.scale, omni)
		if err != nil {
			return err
		}
		rest := &Node{Forward: node.Forward - 1, Branches: node.Branches, Marks: node.Marks}
		r.buds = append(r.buds, &bud{face: twist.FarFace(), twist: twist, node: rest, scale: current.scale})
		return nil
	}

	for _, mark := range node.Marks {
		face, err := resolveFace(current.twist, mark.Alias)
		if err != nil {
			return err
		}
		if _, seen := r.marks[mark.Mark]; !seen {
			r.markOrder = append(r.markOrder, mark.Mark)
		}
		r.marks[mark.Mark] = append(r.marks[mark.Mark], face)
	}
	for _, branch := range node.Branches {
		face, err := resolveFace(current.twist, branch.Alias)
		if err != nil {
			return err
		}
		r.buds = append(r.buds, &bud{
			face:  face,
			twist: current.twist,
			node:  branch.Node,
			scale: effectiveScale(current.scale, branch.Node),
		})
	}
	return nil
}

// executeMarks runs the deferred per-mark strategies, in mark
// registration order: a lone marked face anchors the structure; shared
// marks join or distance-connect their faces through radial pulls.
func (r *Runner) executeMarks() error {
	for id, def := range r.program.Actions {
		if len(r.marks[id]) == 0 {
			return fmt.Errorf("mark %d (%s): %w", id, def.Action.name(), ErrUnknownMark)
		}
	}
	for _, id := range r.markOrder {
		faces := r.marks[id]
		def, defined := r.program.Actions[id]
		if !defined {
			def = MarkDef{Action: MarkJoin}
			if len(faces) == 1 {
				def = MarkDef{Action: MarkBase}
			}
		}
		switch def.Action {
		case MarkBase:
			r.fab.SetAnchor(faces[0])
		case MarkJoin:
			complexes, err := r.bld.CreateRadialPulls(faces, builder.ActionJoin, geom.PercentFull)
			if err != nil {
				return err
			}
			r.complexes = append(r.complexes, complexes...)
		case MarkDistance:
			scale := def.Scale
			if scale == 0 {
				scale = geom.PercentFull
			}
			// Distance scaffolds persist until the Shaping→Slack cleanup;
			// they are not tracked for convergence.
			if _, err := r.bld.CreateRadialPulls(faces, builder.ActionDistance, scale); err != nil {
				return err
			}
		}
		r.log.Debug("mark executed",
			zap.Int("mark", id),
			zap.String("action", def.Action.name()),
			zap.Int("faces", len(faces)),
		)
	}
	return nil
}

func (a MarkAction) name() string {
	switch a {
	case MarkJoin:
		return "join"
	case MarkDistance:
		return "distance"
	default:
		return "base"
	}
}

// resolveFace maps an alias onto a face of the given twist.
func resolveFace(twist *builder.Twist, alias FaceAlias) (*fabric.Face, error) {
	var face *fabric.Face
	switch alias {
	case AliasFar:
		face = twist.FarFace()
	case AliasNear:
		face = twist.NearFace()
	default:
		touching := twist.TouchingFaces()
		index := junctionIndex(alias)
		if index >= len(touching) {
			return nil, fmt.Errorf("alias %s on a twist with %d junction faces: %w",
				alias, len(touching), ErrFaceUnavailable)
		}
		face = touching[index]
	}
	if face.Removed {
		return nil, fmt.Errorf("alias %s: face already consumed: %w", alias, ErrFaceUnavailable)
	}
	return face, nil
}

// junctionIndex maps a side alias onto the interleaved lower/upper
// junction face order produced by the ring connection.
func junctionIndex(alias FaceAlias) int {
	switch alias {
	case AliasLowB:
		return 0
	case AliasLowC:
		return 2
	case AliasLowD:
		return 4
	case AliasTopB:
		return 1
	case AliasTopC:
		return 3
	default: // AliasTopD
		return 5
	}
}
