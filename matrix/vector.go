// SPDX-License-Identifier: MIT

// Package matrix - Row and Column sequences.
//
// Row and Column share one representation (a slice of numbers) and differ
// only in orientation: Transpose converts between them without copying.
// Every operation returns a fresh slice; receivers are never mutated.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/chemeval/number"
)

// Row is one horizontal line of a Matrix.
type Row []number.Number

// Column is one vertical line of a Matrix (or a solution vector).
type Column []number.Number

// Zeros returns a Column of n zeros.
func Zeros(n int) Column {
	return make(Column, n) // number.Number zero value is 0
}

// Ints builds a Row from integers; convenient for literals.
func Ints(xs ...int64) Row {
	r := make(Row, len(xs))
	for i, x := range xs {
		r[i] = number.Int(x)
	}
	return r
}

// Clone returns an independent copy of r.
func (r Row) Clone() Row { return append(Row(nil), r...) }

// Transpose views r as a Column.
func (r Row) Transpose() Column { return Column(r) }

// Get returns r[i] and false when i is out of range.
func (r Row) Get(i int) (number.Number, bool) {
	if i < 0 || i >= len(r) {
		return number.Zero, false
	}
	return r[i], true
}

// Map applies f to every entry.
func (r Row) Map(f func(int, number.Number) number.Number) Row {
	out := make(Row, len(r))
	for i, x := range r {
		out[i] = f(i, x)
	}
	return out
}

// AddEach adds v to every entry.
func (r Row) AddEach(v number.Number) Row {
	return r.Map(func(_ int, x number.Number) number.Number { return x.Add(v) })
}

// MulEach multiplies every entry by v.
func (r Row) MulEach(v number.Number) Row {
	return r.Map(func(_ int, x number.Number) number.Number { return x.Mul(v) })
}

// DivEach divides every entry by v; ErrDivByZero when v == 0.
func (r Row) DivEach(v number.Number) (Row, error) {
	inv, ok := v.Inv()
	if !ok {
		return nil, fmt.Errorf("Row.DivEach: %w", ErrDivByZero)
	}
	return r.MulEach(inv), nil
}

// Add returns r + o element-wise; lengths must match.
func (r Row) Add(o Row) (Row, error) {
	if len(r) != len(o) {
		return nil, fmt.Errorf("Row.Add(%d,%d): %w", len(r), len(o), ErrDimensionMismatch)
	}
	out := make(Row, len(r))
	for i := range r {
		out[i] = r[i].Add(o[i])
	}
	return out, nil
}

// axpy returns r + k*o for equal-length rows (caller guarantees lengths).
func (r Row) axpy(k number.Number, o Row) Row {
	out := make(Row, len(r))
	for i := range r {
		out[i] = r[i].Add(k.Mul(o[i]))
	}
	return out
}

// Max returns the greatest entry; false for an empty row.
func (r Row) Max() (number.Number, bool) {
	if len(r) == 0 {
		return number.Zero, false
	}
	best := r[0]
	for _, x := range r[1:] {
		if best.Less(x) {
			best = x
		}
	}
	return best, true
}

// FindIndexes returns the indices whose entries satisfy pred, ascending.
func (r Row) FindIndexes(pred func(int, number.Number) bool) []int {
	var out []int
	for i, x := range r {
		if pred(i, x) {
			out = append(out, i)
		}
	}
	return out
}

// NonZero returns the indices of non-zero entries.
func (r Row) NonZero() []int {
	return r.FindIndexes(func(_ int, x number.Number) bool { return !x.IsZero() })
}

// Equal reports element-wise equality.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Transpose views c as a Row.
func (c Column) Transpose() Row { return Row(c) }

// Clone returns an independent copy of c.
func (c Column) Clone() Column { return append(Column(nil), c...) }

// Map applies f to every entry.
func (c Column) Map(f func(number.Number) number.Number) Column {
	out := make(Column, len(c))
	for i, x := range c {
		out[i] = f(x)
	}
	return out
}

// AddEach adds v to every entry.
func (c Column) AddEach(v number.Number) Column {
	return c.Map(func(x number.Number) number.Number { return x.Add(v) })
}

// MulEach multiplies every entry by v.
func (c Column) MulEach(v number.Number) Column {
	return c.Map(func(x number.Number) number.Number { return x.Mul(v) })
}

// DivEach divides every entry by v; ErrDivByZero when v == 0.
func (c Column) DivEach(v number.Number) (Column, error) {
	inv, ok := v.Inv()
	if !ok {
		return nil, fmt.Errorf("Column.DivEach: %w", ErrDivByZero)
	}
	return c.MulEach(inv), nil
}

// Equal reports element-wise equality.
func (c Column) Equal(o Column) bool { return Row(c).Equal(Row(o)) }

// String renders c as "[a, b, c]".
func (c Column) String() string { return Row(c).String() }

// String renders r as "[a, b, c]".
func (r Row) String() string {
	s := "["
	for i, x := range r {
		if i > 0 {
			s += _fmtSep
		}
		s += x.String()
	}
	return s + "]"
}
