// SPDX-License-Identifier: MIT
// Package: tensegra/life
//
// life.go — stage enumeration and the transition table.

package life

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/solwyrm/tensegra/fabric"
)

// Stage is one phase of the construction lifecycle.
type Stage uint8

const (
	// Growing: the grammar interpreter is still emitting structure.
	Growing Stage = iota
	// Shaping: growth complete; scaffolding pulls the shape together.
	Shaping
	// Slack: lengths adopted, scaffolding gone, no pretension.
	Slack
	// Pretensing: pretension is ramping up.
	Pretensing
	// Pretenst: pretension established; stable but revisitable.
	Pretenst

	stageCount
)

var stageNames = [stageCount]string{"growing", "shaping", "slack", "pretensing", "pretenst"}

// String implements fmt.Stringer.
func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown-stage"
}

// ErrIllegalTransition is returned for any (from, to) pair absent from
// the transition table; the wrapped message names both stages.
var ErrIllegalTransition = errors.New("life: illegal stage transition")

// Transition is a requested stage change plus its preferences.
type Transition struct {
	Stage Stage
	// AdoptLengths commits current physical lengths as rest lengths
	// where the table allows it.
	AdoptLengths bool
	// StrainToStiffness runs the optimizer on Pretenst→Slack.
	StrainToStiffness bool
}

// Life is an immutable token wrapping the current stage.
type Life struct {
	stage Stage
	log   *zap.Logger
}

// Option configures a Life token.
type Option func(*Life)

// WithLogger attaches a structured logger; the default is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(l *Life) { l.log = log }
}

// NewLife returns a token at the Growing stage.
func NewLife(opts ...Option) Life {
	l := Life{stage: Growing, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Stage reports the wrapped stage.
func (l Life) Stage() Stage { return l.stage }

// WithStage performs the requested transition on the governed fabric
// and returns the new token. Requesting the current stage is a silent
// no-op. A pair not in the table returns ErrIllegalTransition naming
// both stages; the token is unchanged.
func (l Life) WithStage(fab *fabric.Fabric, t Transition) (Life, error) {
	if t.Stage == l.stage {
		return l, nil
	}
	legal := false
	switch l.stage {
	case Growing:
		legal = t.Stage == Shaping
	case Shaping:
		switch t.Stage {
		case Slack:
			legal = true
			if t.AdoptLengths {
				fab.AdoptRestLengths()
				fab.SettleToGround()
				fab.RemoveScaffold()
				fab.SnapshotInstance()
			}
		case Pretensing:
			legal = true
		}
	case Slack:
		legal = t.Stage == Shaping || t.Stage == Pretensing
	case Pretensing:
		legal = t.Stage == Pretenst
	case Pretenst:
		if t.Stage == Slack {
			legal = true
			switch {
			case t.StrainToStiffness:
				adjusted := StrainToStiffness(fab)
				l.log.Debug("strain to stiffness", zap.Int("adjusted", adjusted))
			case t.AdoptLengths:
				fab.AdoptRestLengths()
				fab.SnapshotInstance()
			}
		}
	}
	if !legal {
		return l, fmt.Errorf("%w: %s to %s", ErrIllegalTransition, l.stage, t.Stage)
	}
	l.log.Debug("stage transition",
		zap.Stringer("from", l.stage),
		zap.Stringer("to", t.Stage),
	)
	return Life{stage: t.Stage, log: l.log}, nil
}
