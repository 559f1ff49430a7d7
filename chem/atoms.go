// SPDX-License-Identifier: MIT

package chem

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/chemeval/matrix"
	"github.com/katalvlaran/chemeval/number"
)

const (
	opAtoms          = "Atoms"
	opCount          = "Count"
	opCoefficientMap = "CoefficientMap"
)

// MaxAtoms bounds how many atoms Atoms and Sequence.Atoms expand into.
// Counting (Count, CoefficientMap, balancing) has no such bound.
const MaxAtoms = 1 << 20

// multiplicity resolves a coefficient or subscript to a repeat count.
func multiplicity(x number.Number) (int, error) {
	v, ok := x.Int64()
	if !ok || v < 0 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%s: %w", x, ErrInvalidMultiplicity)
	}
	return int(v), nil
}

// mulCount returns a·b for non-negative counts, or ErrInvalidMultiplicity
// when the product does not fit an int.
func mulCount(a, b int) (int, error) {
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("%d × %d overflows: %w", a, b, ErrInvalidMultiplicity)
	}
	return a * b, nil
}

// addCount returns a+b for non-negative counts, or ErrInvalidMultiplicity
// when the sum does not fit an int.
func addCount(a, b int) (int, error) {
	if b > math.MaxInt-a {
		return 0, fmt.Errorf("%d + %d overflows: %w", a, b, ErrInvalidMultiplicity)
	}
	return a + b, nil
}

// total sums the per-element counts of m.
func total(m map[Element]int) (int, error) {
	var (
		sum int
		err error
	)
	for _, k := range m {
		if sum, err = addCount(sum, k); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// Atoms flattens n into its atoms, repeating every group's atoms by its
// multiplicity. Order follows the formula left to right.
//
// Errors:
//   - ErrInvalidMultiplicity for a bad or overflowing multiplicity.
//   - ErrTooManyAtoms when n holds more than MaxAtoms atoms.
func Atoms(n Node) ([]Element, error) {
	m, err := counts(n)
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
	if err = appendAtoms(&out, n); err != nil {
		return nil, chemErrorf(opAtoms, err)
	}
	return out, nil
}

func appendAtoms(dst *[]Element, n Node) error {
	var (
		times    int
		children []Node
		err      error
	)
	switch x := n.(type) {
	case *Unit:
		if times, err = multiplicity(x.Subscript); err != nil {
			return err
		}
		for i := 0; i < times; i++ {
			*dst = append(*dst, x.Element)
		}
		return nil
	case *Parens:
		children = x.Children
		if times, err = multiplicity(x.Subscript); err != nil {
			return err
		}
	case *Chunk:
		children = x.Children
		if times, err = multiplicity(x.Coefficient); err != nil {
			return err
		}
	default:
		return nil
	}
	if times == 0 {
		return nil
	}

	var once []Element
	for _, c := range children {
		if err = appendAtoms(&once, c); err != nil {
			return err
		}
	}
	for i := 0; i < times; i++ {
		*dst = append(*dst, once...)
	}
	return nil
}

// counts tallies atoms per element without expanding them.
func counts(n Node) (map[Element]int, error) {
	out := map[Element]int{}
	if err := tally(out, n, 1); err != nil {
		return nil, err
	}
	return out, nil
}

func tally(dst map[Element]int, n Node, scale int) error {
	switch x := n.(type) {
	case *Unit:
		k, err := multiplicity(x.Subscript)
		if err != nil {
			return err
		}
		if k, err = mulCount(scale, k); err != nil {
			return err
		}
		sum, err := addCount(dst[x.Element], k)
		if err != nil {
			return err
		}
		dst[x.Element] = sum
	case *Parens:
		return tallyGroup(dst, x.Children, x.Subscript, scale)
	case *Chunk:
		return tallyGroup(dst, x.Children, x.Coefficient, scale)
	}
	return nil
}

func tallyGroup(dst map[Element]int, children []Node, times number.Number, scale int) error {
	k, err := multiplicity(times)
	if err != nil {
		return err
	}
	if scale, err = mulCount(scale, k); err != nil {
		return err
	}
	for _, c := range children {
		if err = tally(dst, c, scale); err != nil {
			return err
		}
	}
	return nil
}

// Count returns how many atoms of el n contains.
func Count(n Node, el Element) (int, error) {
	m, err := counts(n)
	if err != nil {
		return 0, chemErrorf(opCount, err)
	}
	return m[el], nil
}

// CoefficientMap counts every element of universe in n (zero included).
// An atom of n outside universe is ErrInconsistentElementSet.
func CoefficientMap(n Node, universe []Element) (map[Element]int, error) {
	m, err := counts(n)
	if err != nil {
		return nil, chemErrorf(opCoefficientMap, err)
	}

	out := make(map[Element]int, len(universe))
	for _, el := range universe {
		out[el] = 0
	}
	for el, k := range m {
		if _, ok := out[el]; !ok {
			if k == 0 {
				continue // H0 mentions H but holds none
			}
			return nil, chemErrorf(opCoefficientMap, fmt.Errorf("%s: %w", el, ErrInconsistentElementSet))
		}
		out[el] = k
	}
	return out, nil
}

// CoefficientRow projects CoefficientMap onto universe order.
func CoefficientRow(n Node, universe []Element) (matrix.Row, error) {
	m, err := CoefficientMap(n, universe)
	if err != nil {
		return nil, err
	}
	row := make(matrix.Row, len(universe))
	for i, el := range universe {
		row[i] = number.Int(int64(m[el]))
	}
	return row, nil
}

// CoefficientColumn is CoefficientRow as a column.
func CoefficientColumn(n Node, universe []Element) (matrix.Column, error) {
	row, err := CoefficientRow(n, universe)
	if err != nil {
		return nil, err
	}
	return row.Transpose(), nil
}

// Universe returns the distinct elements of nodes in ascending order.
func Universe(nodes ...Node) ([]Element, error) {
	seen := map[Element]bool{}
	for _, n := range nodes {
		m, err := counts(n)
		if err != nil {
			return nil, err
		}
		for el, k := range m {
			if k > 0 {
				seen[el] = true
			}
		}
	}
	out := make([]Element, 0, len(seen))
	for el := range seen {
		out = append(out, el)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
