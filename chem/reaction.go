// SPDX-License-Identifier: MIT

package chem

import (
	"fmt"

	"github.com/katalvlaran/chemeval/matrix"
	"github.com/katalvlaran/chemeval/number"
)

const (
	opMatrix          = "Matrix"
	opBalance         = "Balance"
	opBalanceIntegers = "BalanceIntegers"
	opBalanced        = "Balanced"
)

const (
	reactantSign = 1
	productSign  = -1
)

// Reaction is reactants ⟶ products.
type Reaction struct {
	Reactants Sequence
	Products  Sequence
}

// Terms returns reactants followed by products.
func (r Reaction) Terms() Sequence {
	out := make(Sequence, 0, len(r.Reactants)+len(r.Products))
	out = append(out, r.Reactants...)
	return append(out, r.Products...)
}

// Elements returns the distinct elements of both sides in ascending order.
// This order fixes the row meaning of Matrix.
func (r Reaction) Elements() ([]Element, error) { return r.Terms().Elements() }

// Matrix builds the augmented balancing matrix: one row per element of
// Elements, one column per term (reactants +, products −) and a final zero
// column for the homogeneous right-hand side. Coefficients already written
// on the terms are ignored: the columns count one formula unit each.
func (r Reaction) Matrix() (*matrix.Matrix, error) {
	if len(r.Reactants) == 0 || len(r.Products) == 0 {
		return nil, chemErrorf(opMatrix, ErrEmptyReaction)
	}
	r = Reaction{Reactants: r.Reactants.Units(), Products: r.Products.Units()}
	universe, err := r.Elements()
	if err != nil {
		return nil, chemErrorf(opMatrix, err)
	}
	if len(universe) == 0 {
		return nil, chemErrorf(opMatrix, ErrEmptyReaction)
	}

	lhs, err := r.Reactants.Columns(universe, reactantSign)
	if err != nil {
		return nil, chemErrorf(opMatrix, err)
	}
	rhs, err := r.Products.Columns(universe, productSign)
	if err != nil {
		return nil, chemErrorf(opMatrix, err)
	}

	m := matrix.New()
	for _, col := range append(append(lhs, rhs...), matrix.Zeros(len(universe))) {
		if err = m.PushColumn(col); err != nil {
			return nil, chemErrorf(opMatrix, err)
		}
	}
	return m, nil
}

// Balance solves for one coefficient per term, reactants first, with the
// last term fixed to 1. The Reaction itself is not modified.
//
// Implementation:
//   - Stage 1: build Matrix and drop its zero right-hand side.
//   - Stage 2: matrix.Nullspace reorders rows (opts select the strategy),
//     eliminates and back-substitutes.
//   - Stage 3: require every coefficient to be positive and every element
//     to cancel.
//
// Errors:
//   - ErrEmptyReaction, ErrInvalidMultiplicity from matrix construction.
//   - matrix.ErrReorderingFailed, matrix.ErrSingular, matrix.ErrNonSquare,
//     matrix.ErrInconsistent from solving.
//   - ErrUnbalanceable when the solution is not a positive null vector.
func (r Reaction) Balance(opts ...matrix.Option) (matrix.Column, error) {
	aug, err := r.Matrix()
	if err != nil {
		return nil, chemErrorf(opBalance, err)
	}
	a, err := aug.Slice(0, aug.Rows(), 0, aug.Cols()-1)
	if err != nil {
		return nil, chemErrorf(opBalance, err)
	}

	x, err := a.Nullspace(opts...)
	if err != nil {
		return nil, chemErrorf(opBalance, err)
	}

	for i, v := range x {
		if v.Sign() <= 0 {
			return nil, chemErrorf(opBalance, fmt.Errorf("term %d coefficient %s: %w", i, v, ErrUnbalanceable))
		}
	}
	residual, err := a.MulVec(x)
	if err != nil {
		return nil, chemErrorf(opBalance, err)
	}
	for i, v := range residual {
		if !v.IsZero() {
			return nil, chemErrorf(opBalance, fmt.Errorf("element row %d off by %s: %w", i, v, ErrUnbalanceable))
		}
	}
	return x, nil
}

// BalanceIntegers is Balance scaled to the smallest positive integers.
func (r Reaction) BalanceIntegers(opts ...matrix.Option) (matrix.Column, error) {
	x, err := r.Balance(opts...)
	if err != nil {
		return nil, chemErrorf(opBalanceIntegers, err)
	}
	return Integers(x), nil
}

// Integers scales x by the LCM of its denominators, then divides by the GCD
// of the resulting numerators.
func Integers(x matrix.Column) matrix.Column {
	scaled := x.MulEach(number.FromBigInt(number.LCMDenominators(x)))
	g := number.GCDNumerators(scaled)
	if g.Sign() == 0 {
		return scaled
	}
	out, _ := scaled.DivEach(number.FromBigInt(g)) // g != 0
	return out
}

// Balanced returns a copy of r with term coefficients replaced by coeffs,
// reactants first. Terms that are not chunks are wrapped in one.
func (r Reaction) Balanced(coeffs matrix.Column) (Reaction, error) {
	if len(coeffs) != len(r.Reactants)+len(r.Products) {
		return Reaction{}, chemErrorf(opBalanced, fmt.Errorf("%d coefficients for %d terms: %w",
			len(coeffs), len(r.Reactants)+len(r.Products), ErrCoefficientCount))
	}
	withCoeff := func(n Node, k number.Number) Node {
		if c, ok := n.(*Chunk); ok {
			return c.WithCoefficient(k)
		}
		return NewChunk(k, n)
	}

	out := Reaction{
		Reactants: make(Sequence, len(r.Reactants)),
		Products:  make(Sequence, len(r.Products)),
	}
	for i, n := range r.Reactants {
		out.Reactants[i] = withCoeff(n, coeffs[i])
	}
	for i, n := range r.Products {
		out.Products[i] = withCoeff(n, coeffs[len(r.Reactants)+i])
	}
	return out, nil
}

// IsBalanced reports whether both sides hold the same total number of
// atoms. It does not compare elements; see IsElementBalanced.
func (r Reaction) IsBalanced() (bool, error) {
	lhs, err := sideTotal(r.Reactants)
	if err != nil {
		return false, err
	}
	rhs, err := sideTotal(r.Products)
	if err != nil {
		return false, err
	}
	return lhs == rhs, nil
}

// IsValid reports whether both sides hold the same number of distinct
// elements. It does not check that they are the same elements.
func (r Reaction) IsValid() (bool, error) {
	lhs, err := r.Reactants.Elements()
	if err != nil {
		return false, err
	}
	rhs, err := r.Products.Elements()
	if err != nil {
		return false, err
	}
	return len(lhs) == len(rhs), nil
}

// IsElementBalanced reports whether every element occurs equally often on
// both sides.
func (r Reaction) IsElementBalanced() (bool, error) {
	lhs, err := sideCounts(r.Reactants)
	if err != nil {
		return false, err
	}
	rhs, err := sideCounts(r.Products)
	if err != nil {
		return false, err
	}
	if len(lhs) != len(rhs) {
		return false, nil
	}
	for el, k := range lhs {
		if rhs[el] != k {
			return false, nil
		}
	}
	return true, nil
}

// sideCounts sums element counts over s, dropping zero entries.
func sideCounts(s Sequence) (map[Element]int, error) {
	out := map[Element]int{}
	for _, n := range s {
		m, err := counts(n)
		if err != nil {
			return nil, err
		}
		for el, k := range m {
			if k == 0 {
				continue
			}
			if out[el], err = addCount(out[el], k); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// sideTotal is the number of atoms on one side, without expanding them.
func sideTotal(s Sequence) (int, error) {
	m, err := sideCounts(s)
	if err != nil {
		return 0, err
	}
	return total(m)
}
