// SPDX-License-Identifier: MIT

package chem

import (
	"fmt"

	"github.com/katalvlaran/chemeval/matrix"
	"github.com/katalvlaran/chemeval/number"
)

// Sequence is one side of a reaction: terms joined by "+".
type Sequence []Node

// Atoms concatenates the atoms of every term. The whole side is bounded by
// MaxAtoms.
func (s Sequence) Atoms() ([]Element, error) {
	m, err := sideCounts(s)
	if err != nil {
		return nil, chemErrorf(opAtoms, err)
	}
	size, err := total(m)
	if err != nil {
		return nil, chemErrorf(opAtoms, err)
	}
	if size > MaxAtoms {
		return nil, chemErrorf(opAtoms, fmt.Errorf("%d atoms: %w", size, ErrTooManyAtoms))
	}

	out := make([]Element, 0, size)
	for _, n := range s {
		atoms, err := Atoms(n)
		if err != nil {
			return nil, err
		}
		out = append(out, atoms...)
	}
	return out, nil
}

// Elements returns the distinct elements of s in ascending order.
func (s Sequence) Elements() ([]Element, error) { return Universe(s...) }

// Units returns s with every chunk coefficient reset to 1, leaving the
// formula of each term.
func (s Sequence) Units() Sequence {
	out := make(Sequence, len(s))
	for i, n := range s {
		if c, ok := n.(*Chunk); ok {
			out[i] = c.WithCoefficient(number.One)
			continue
		}
		out[i] = n
	}
	return out
}

// Columns returns one coefficient column per term, scaled by sign.
func (s Sequence) Columns(universe []Element, sign int64) ([]matrix.Column, error) {
	k := number.Int(sign)
	out := make([]matrix.Column, len(s))
	for i, n := range s {
		col, err := CoefficientColumn(n, universe)
		if err != nil {
			return nil, err
		}
		out[i] = col.MulEach(k)
	}
	return out, nil
}
