// SPDX-License-Identifier: MIT

package chem

import (
	"github.com/katalvlaran/chemeval/number"
)

// Element is a chemical symbol. Elements order lexicographically.
type Element string

// State is a phase annotation.
type State int

const (
	Aqueous State = iota
	Solid
	Liquid
	Gas
)

var stateNames = [...]string{Aqueous: "aq", Solid: "s", Liquid: "l", Gas: "g"}

// String returns the written form: aq, s, l or g.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "?"
	}
	return stateNames[s]
}

// ParseState reads aq, s, l or g.
func ParseState(s string) (State, bool) {
	for i, name := range stateNames {
		if name == s {
			return State(i), true
		}
	}
	return 0, false
}

// Node is a formula tree node: *Chunk, *Parens or *Unit.
type Node interface {
	String() string
	isNode()
}

// Chunk is a term of a reaction: coefficient, formula, optional state.
type Chunk struct {
	Coefficient number.Number
	Children    []Node
	State       *State
}

// Parens is a parenthesized group repeated Subscript times.
type Parens struct {
	Children  []Node
	Subscript number.Number
}

// Unit is one element repeated Subscript times.
type Unit struct {
	Element   Element
	Subscript number.Number
}

func (*Chunk) isNode()  {}
func (*Parens) isNode() {}
func (*Unit) isNode()   {}

// NewUnit builds element with an integer subscript.
func NewUnit(el Element, subscript int64) *Unit {
	return &Unit{Element: el, Subscript: number.Int(subscript)}
}

// NewParens builds (children)subscript over a copy of children.
func NewParens(subscript int64, children ...Node) *Parens {
	return &Parens{Children: append([]Node(nil), children...), Subscript: number.Int(subscript)}
}

// NewChunk builds a stateless term over a copy of children.
func NewChunk(coefficient number.Number, children ...Node) *Chunk {
	return &Chunk{Coefficient: coefficient, Children: append([]Node(nil), children...)}
}

// InState returns a copy of c annotated with s.
func (c *Chunk) InState(s State) *Chunk {
	out := *c
	out.Children = append([]Node(nil), c.Children...)
	out.State = &s
	return &out
}

// WithCoefficient returns a copy of c with its coefficient replaced.
func (c *Chunk) WithCoefficient(k number.Number) *Chunk {
	out := *c
	out.Children = append([]Node(nil), c.Children...)
	out.Coefficient = k
	return &out
}

// RootCoefficient is the chunk coefficient, or 1 for other nodes.
func RootCoefficient(n Node) number.Number {
	if c, ok := n.(*Chunk); ok {
		return c.Coefficient
	}
	return number.One
}
