// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Keep a row-major sequence of equal-length Rows.
//   - Guarantee safety at the public surface: accessors return errors instead
//     of panicking; every builder and mutation re-validates row lengths.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - FromRows: O(r*c) copy; At/Set: O(1); Clone/Transpose: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/chemeval/number"
)

// ---------- error context tags ----------

const (
	opFromRows     = "FromRows"
	opColumnVector = "ColumnVector"
	opPushRow      = "PushRow"
	opPushColumn   = "PushColumn"
	opAt           = "At"
	opSet          = "Set"
	opRow          = "Row"
	opColumn       = "Column"
	opSlice        = "Slice"
	opMapRange     = "MapRange"
	opReplaceRow   = "ReplaceRow"
	opDot          = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a dense matrix in row-major order.
// Invariant: every row has length cols.
type Matrix struct {
	rows []Row
	cols int
}

// New returns an empty 0×0 matrix, ready for PushRow/PushColumn.
func New() *Matrix { return &Matrix{} }

// FromRows copies rows into a new Matrix.
//
// Implementation:
//   - Stage 1: validate uniform row length (ValidateRows).
//   - Stage 2: deep-copy every row so the caller keeps ownership of its slices.
//
// Errors:
//   - ErrDimensionMismatch when two rows differ in length.
func FromRows(rows [][]number.Number) (*Matrix, error) {
	rs := make([]Row, len(rows))
	for i, r := range rows {
		rs[i] = Row(r).Clone()
	}
	return fromRowSlice(rs, opFromRows)
}

// FromRowValues is FromRows for already-typed rows.
func FromRowValues(rows ...Row) (*Matrix, error) {
	rs := make([]Row, len(rows))
	for i, r := range rows {
		rs[i] = r.Clone()
	}
	return fromRowSlice(rs, opFromRows)
}

// FromInts builds a matrix from integer literals.
func FromInts(rows [][]int64) (*Matrix, error) {
	rs := make([]Row, len(rows))
	for i, r := range rows {
		rs[i] = Ints(r...)
	}
	return fromRowSlice(rs, opFromRows)
}

// fromRowSlice takes ownership of rs after validation.
func fromRowSlice(rs []Row, tag string) (*Matrix, error) {
	width, err := ValidateRows(rs)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	return &Matrix{rows: rs, cols: width}, nil
}

// ColumnVector returns an n×1 matrix holding xs.
// ErrBadShape when xs is empty.
func ColumnVector(xs []number.Number) (*Matrix, error) {
	if len(xs) == 0 {
		return nil, matrixErrorf(opColumnVector, ErrBadShape)
	}
	rs := make([]Row, len(xs))
	for i, x := range xs {
		rs[i] = Row{x}
	}
	return &Matrix{rows: rs, cols: 1}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols().
func (m *Matrix) Shape() (rows, cols int) { return len(m.rows), m.cols }

// IsEmpty reports a matrix without rows.
func (m *Matrix) IsEmpty() bool { return len(m.rows) == 0 }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	rs := make([]Row, len(m.rows))
	for i, r := range m.rows {
		rs[i] = r.Clone()
	}
	return &Matrix{rows: rs, cols: m.cols}
}

// Transpose returns a new cols×rows matrix.
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{rows: make([]Row, m.cols), cols: len(m.rows)}
	var i, j int
	for j = 0; j < m.cols; j++ {
		row := make(Row, len(m.rows))
		for i = 0; i < len(m.rows); i++ {
			row[i] = m.rows[i][j]
		}
		out.rows[j] = row
	}
	return out
}

// PushRow appends a copy of row. On an empty matrix it fixes the width.
func (m *Matrix) PushRow(row Row) error {
	if len(m.rows) > 0 {
		if err := ValidateVecLen(len(row), m.cols); err != nil {
			return matrixErrorf(opPushRow, err)
		}
	} else {
		m.cols = len(row)
	}
	m.rows = append(m.rows, row.Clone())
	return nil
}

// PushColumn appends col as a new right-most column. On an empty matrix it
// creates one row per entry.
func (m *Matrix) PushColumn(col Column) error {
	if len(col) == 0 {
		return matrixErrorf(opPushColumn, ErrBadShape)
	}
	if len(m.rows) == 0 {
		m.rows = make([]Row, len(col))
		for i, x := range col {
			m.rows[i] = Row{x}
		}
		m.cols = 1
		return nil
	}
	if err := ValidateVecLen(len(col), len(m.rows)); err != nil {
		return matrixErrorf(opPushColumn, err)
	}
	for i, x := range col {
		m.rows[i] = append(m.rows[i], x)
	}
	m.cols++
	return nil
}

// At returns the value at (i, j) or ErrOutOfRange.
func (m *Matrix) At(i, j int) (number.Number, error) {
	if err := ValidateIndex(m, i, j); err != nil {
		return number.Zero, matrixErrorf(opAt, err)
	}
	return m.rows[i][j], nil
}

// Set stores v at (i, j) or returns ErrOutOfRange.
func (m *Matrix) Set(i, j int, v number.Number) error {
	if err := ValidateIndex(m, i, j); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.rows[i][j] = v
	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) (Row, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, matrixErrorf(opRow, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}
	return m.rows[i].Clone(), nil
}

// Column returns a copy of column j.
func (m *Matrix) Column(j int) (Column, error) {
	if j < 0 || j >= m.cols {
		return nil, matrixErrorf(opColumn, fmt.Errorf("%d: %w", j, ErrOutOfRange))
	}
	col := make(Column, len(m.rows))
	for i, r := range m.rows {
		col[i] = r[j]
	}
	return col, nil
}

// Slice copies the half-open window [r0,r1) × [c0,c1) into a new matrix.
// An empty window is ErrOutOfRange: a slice must select at least one cell.
func (m *Matrix) Slice(r0, r1, c0, c1 int) (*Matrix, error) {
	if err := ValidateRange(r0, r1, len(m.rows)); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if err := ValidateRange(c0, c1, m.cols); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if r0 == r1 || c0 == c1 {
		return nil, matrixErrorf(opSlice, ErrOutOfRange)
	}
	rs := make([]Row, 0, r1-r0)
	for i := r0; i < r1; i++ {
		rs = append(rs, m.rows[i][c0:c1].Clone())
	}
	return &Matrix{rows: rs, cols: c1 - c0}, nil
}

// MapRange replaces every cell of [r0,r1) × [c0,c1) with f(i, j, value).
// ErrOutOfRange when the window is invalid or selects no cell.
func (m *Matrix) MapRange(r0, r1, c0, c1 int, f func(i, j int, v number.Number) number.Number) error {
	if err := ValidateRange(r0, r1, len(m.rows)); err != nil {
		return matrixErrorf(opMapRange, err)
	}
	if err := ValidateRange(c0, c1, m.cols); err != nil {
		return matrixErrorf(opMapRange, err)
	}
	if r0 == r1 || c0 == c1 {
		return matrixErrorf(opMapRange, ErrOutOfRange)
	}
	var i, j int
	for i = r0; i < r1; i++ {
		for j = c0; j < c1; j++ {
			m.rows[i][j] = f(i, j, m.rows[i][j])
		}
	}
	return nil
}

// MapRow applies f to every cell of row i.
func (m *Matrix) MapRow(i int, f func(i, j int, v number.Number) number.Number) error {
	return m.MapRange(i, i+1, 0, m.cols, f)
}

// MapCol applies f to every cell of column j.
func (m *Matrix) MapCol(j int, f func(i, j int, v number.Number) number.Number) error {
	return m.MapRange(0, len(m.rows), j, j+1, f)
}

// ReplaceRow overwrites row i with a copy of row; lengths must match.
func (m *Matrix) ReplaceRow(i int, row Row) error {
	if i < 0 || i >= len(m.rows) {
		return matrixErrorf(opReplaceRow, ErrOutOfRange)
	}
	if err := ValidateVecLen(len(row), m.cols); err != nil {
		return matrixErrorf(opReplaceRow, err)
	}
	m.rows[i] = row.Clone()
	return nil
}

// MulRow scales row i by k.
func (m *Matrix) MulRow(i int, k number.Number) error {
	return m.MapRow(i, func(_, _ int, v number.Number) number.Number { return v.Mul(k) })
}

// Dot returns the matrix product m·rhs.
// ErrDimensionMismatch when m.Cols() != rhs.Rows().
func (m *Matrix) Dot(rhs *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(rhs); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	if m.cols != rhs.Rows() {
		return nil, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	out := &Matrix{rows: make([]Row, len(m.rows)), cols: rhs.cols}
	var i, j, k int
	for i = 0; i < len(m.rows); i++ {
		row := make(Row, rhs.cols)
		for j = 0; j < rhs.cols; j++ {
			sum := number.Zero
			for k = 0; k < m.cols; k++ {
				sum = sum.Add(m.rows[i][k].Mul(rhs.rows[k][j]))
			}
			row[j] = sum
		}
		out.rows[i] = row
	}
	return out, nil
}

// MulVec returns m·x for a Column x of length Cols().
func (m *Matrix) MulVec(x Column) (Column, error) {
	if err := ValidateVecLen(len(x), m.cols); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	out := make(Column, len(m.rows))
	for i, r := range m.rows {
		sum := number.Zero
		for k, v := range r {
			sum = sum.Add(v.Mul(x[k]))
		}
		out[i] = sum
	}
	return out, nil
}

// UnpackSingleton returns the only entry of a 1×1 matrix.
func (m *Matrix) UnpackSingleton() (number.Number, bool) {
	if len(m.rows) != 1 || m.cols != 1 {
		return number.Zero, false
	}
	return m.rows[0][0], true
}

// UnpackColumnVector returns the entries of an n×1 matrix.
func (m *Matrix) UnpackColumnVector() (Column, bool) {
	if m.cols != 1 || len(m.rows) == 0 {
		return nil, false
	}
	col := make(Column, len(m.rows))
	for i, r := range m.rows {
		col[i] = r[0]
	}
	return col, true
}

// Equal reports identical shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || len(m.rows) != len(o.rows) || m.cols != o.cols {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}
	return true
}

// permute returns a new matrix whose row k is m's row order[k].
func (m *Matrix) permute(order []int) *Matrix {
	rs := make([]Row, len(order))
	for k, i := range order {
		rs[k] = m.rows[i].Clone()
	}
	return &Matrix{rows: rs, cols: m.cols}
}
