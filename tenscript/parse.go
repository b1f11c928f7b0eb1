// SPDX-License-Identifier: MIT
// Package: tensegra/tenscript
//
// parse.go — recursive-descent parser for the growth grammar.

package tenscript

import (
	"fmt"

	"github.com/solwyrm/tensegra/geom"
)

// FaceAlias names one face of the most recently grown twist.
type FaceAlias uint8

const (
	// AliasFar is the end face growth continues from ('A').
	AliasFar FaceAlias = iota
	// AliasNear is the base end face ('a').
	AliasNear
	// AliasLowB..AliasLowD are the lower junction faces ('b'..'d').
	AliasLowB
	AliasLowC
	AliasLowD
	// AliasTopB..AliasTopD are the upper junction faces ('B'..'D').
	AliasTopB
	AliasTopC
	AliasTopD
)

var aliasRunes = map[byte]FaceAlias{
	'A': AliasFar, 'a': AliasNear,
	'b': AliasLowB, 'c': AliasLowC, 'd': AliasLowD,
	'B': AliasTopB, 'C': AliasTopC, 'D': AliasTopD,
}

// String implements fmt.Stringer.
func (a FaceAlias) String() string {
	for r, alias := range aliasRunes {
		if alias == a {
			return string(r)
		}
	}
	return "?"
}

// Side reports whether the alias names a junction face rather than an
// end face; growing side branches requires an omni twist.
func (a FaceAlias) Side() bool { return a != AliasFar && a != AliasNear }

// Branch is a subtree to grow on an aliased face.
type Branch struct {
	Alias FaceAlias
	Node  *Node
}

// FaceMark attaches a mark id to an aliased face.
type FaceMark struct {
	Alias FaceAlias
	Mark  int
}

// Node is one instruction-tree node.
type Node struct {
	// Forward is the number of twists to grow before branching.
	Forward int
	// Scale is the subtree's growth scale in percent of the parent's
	// scale; 0 means inherit unchanged.
	Scale    float64
	Branches []Branch
	Marks    []FaceMark
}

// NeedsOmni reports whether the node's final twist must be omni to
// expose the junction faces its branches and marks address.
func (n *Node) NeedsOmni() bool {
	for _, branch := range n.Branches {
		if branch.Alias.Side() {
			return true
		}
	}
	for _, mark := range n.Marks {
		if mark.Alias.Side() {
			return true
		}
	}
	return false
}

// MarkAction is the deferred strategy a markdef binds to a mark id.
type MarkAction uint8

const (
	// MarkJoin pulls the marked faces together into a rigid connection.
	MarkJoin MarkAction = iota
	// MarkDistance holds the marked faces at a scaled distance.
	MarkDistance
	// MarkBase anchors the marked face for ground alignment.
	MarkBase
)

// MarkDef binds an action (and, for distance, a scale percent) to a
// mark id.
type MarkDef struct {
	Action MarkAction
	Scale  float64
}

// Program is a parsed tenscript: the instruction tree plus the markdef
// table.
type Program struct {
	Root    *Node
	Actions map[int]MarkDef
}

// Parse reads a tenscript program.
func Parse(source string) (*Program, error) {
	p := &parser{src: source}
	root, err := p.tree()
	if err != nil {
		return nil, err
	}
	actions, err := p.markDefs()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing input")
	}
	return &Program{Root: root, Actions: actions}, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, detail)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) expect(ch byte) error {
	got, ok := p.peek()
	if !ok || got != ch {
		return p.errorf("expected %q", string(ch))
	}
	p.pos++
	return nil
}

func (p *parser) integer() (int, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected integer")
	}
	value := 0
	for _, digit := range []byte(p.src[start:p.pos]) {
		value = value*10 + int(digit-'0')
	}
	return value, nil
}

func (p *parser) tree() (*Node, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	node := &Node{}
	for {
		if err := p.item(node); err != nil {
			return nil, err
		}
		ch, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated tree")
		}
		if ch == ',' {
			p.pos++
			continue
		}
		if ch == ')' {
			p.pos++
			return node, nil
		}
		return nil, p.errorf("expected %q or %q", ",", ")")
	}
}

func (p *parser) item(node *Node) error {
	ch, ok := p.peek()
	if !ok {
		return p.errorf("unexpected end of program")
	}
	switch {
	case ch >= '0' && ch <= '9':
		count, err := p.integer()
		if err != nil {
			return err
		}
		node.Forward += count
		return nil

	case ch == 'S':
		p.pos++
		percent, err := p.integer()
		if err != nil {
			return err
		}
		node.Scale = float64(percent)
		return nil

	case ch == 'M':
		p.pos++
		alias, err := p.alias()
		if err != nil {
			return err
		}
		mark, err := p.integer()
		if err != nil {
			return err
		}
		node.Marks = append(node.Marks, FaceMark{Alias: alias, Mark: mark})
		return nil

	default:
		alias, err := p.alias()
		if err != nil {
			return err
		}
		subtree, err := p.tree()
		if err != nil {
			return err
		}
		node.Branches = append(node.Branches, Branch{Alias: alias, Node: subtree})
		return nil
	}
}

func (p *parser) alias() (FaceAlias, error) {
	ch, ok := p.peek()
	if !ok {
		return 0, p.errorf("expected face alias")
	}
	alias, known := aliasRunes[ch]
	if !known {
		return 0, p.errorf("unknown face alias %q", string(ch))
	}
	p.pos++
	return alias, nil
}

func (p *parser) markDefs() (map[int]MarkDef, error) {
	actions := map[int]MarkDef{}
	for {
		ch, ok := p.peek()
		if !ok || ch != ':' {
			return actions, nil
		}
		p.pos++
		mark, err := p.integer()
		if err != nil {
			return nil, err
		}
		if err = p.expect('='); err != nil {
			return nil, err
		}
		def, err := p.markAction()
		if err != nil {
			return nil, err
		}
		actions[mark] = def
	}
}

func (p *parser) markAction() (MarkDef, error) {
	p.skipSpace()
	switch {
	case p.consume("join"):
		return MarkDef{Action: MarkJoin}, nil
	case p.consume("distance-"):
		percent, err := p.integer()
		if err != nil {
			return MarkDef{}, err
		}
		return MarkDef{Action: MarkDistance, Scale: float64(percent)}, nil
	case p.consume("base"):
		return MarkDef{Action: MarkBase}, nil
	default:
		return MarkDef{}, p.errorf("expected join, distance-N, or base")
	}
}

func (p *parser) consume(word string) bool {
	if len(p.src)-p.pos < len(word) || p.src[p.pos:p.pos+len(word)] != word {
		return false
	}
	p.pos += len(word)
	return true
}

// effectiveScale resolves a node's scale against its parent's.
func effectiveScale(parent float64, node *Node) float64 {
	if node.Scale == 0 {
		return parent
	}
	return parent * geom.PercentToFactor(node.Scale)
}
