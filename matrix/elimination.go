// SPDX-License-Identifier: MIT
// Package matrix - reordering, elimination and substitution kernels.
//
// Purpose:
//   - Reorder rows so that plain Gaussian elimination never meets a zero
//     diagonal entry in the original layout (NonZeroDiagonal).
//   - Eliminate below the diagonal without pivoting (ForwardElimination).
//   - Back-substitute augmented systems (Solve) and recover one null-space
//     representative of a rank-deficient system (Nullspace).
//
// Notes:
//   - All arithmetic is exact. A zero pivot is reported as ErrSingular; no
//     row exchange happens after the initial reordering.
//   - The last column of an augmented matrix is never a pivot column.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/chemeval/matching"
	"github.com/katalvlaran/chemeval/number"
)

const (
	opNonZeroDiagonal    = "NonZeroDiagonal"
	opForwardElimination = "ForwardElimination"
	opSolve              = "Solve"
	opNullspace          = "Nullspace"
)

// NonZeroDiagonal returns a copy of m with rows reordered so that, for every
// diagonal position i, row i is non-zero in column i.
//
// Implementation:
//   - Stage 1: label every row with the set of its non-zero column indices.
//   - Stage 2: assign rows to positions 0..P-1, P = min(rows, cols) (or
//     min(rows, cols-1) under WithAugmented), via the configured strategy.
//   - Stage 3: emit assigned rows in position order, then the unassigned
//     rows in their original relative order.
//
// Errors:
//   - ErrReorderingFailed wrapping matching.ErrNoPerfectMatching (augmenting)
//     or matching.ErrNotConverged (greedy).
//
// Determinism:
//   - Both strategies scan rows in ascending order; an already valid
//     diagonal is returned unchanged.
//
// Complexity:
//   - Augmenting: O(P·nnz). Greedy: O(passes·P·rows).
func (m *Matrix) NonZeroDiagonal(opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	width := m.cols
	if o.augmented && width > 0 {
		width--
	}
	positions := min(len(m.rows), width)

	valid := make([][]int, len(m.rows))
	for i, r := range m.rows {
		valid[i] = r.NonZero()
	}

	var (
		perm []int
		err  error
	)
	switch o.ordering {
	case OrderingGreedy:
		perm, err = matching.OrderSolver(valid, positions, o.maxPasses)
	default:
		perm, err = matching.Assign(valid, positions)
	}
	if err != nil {
		return nil, matrixErrorf(opNonZeroDiagonal, fmt.Errorf("%w: %w", ErrReorderingFailed, err))
	}

	order := matching.Complete(perm, len(m.rows))
	o.tracef("%s(%s): row order %v", opNonZeroDiagonal, o.ordering, order)

	return m.permute(order), nil
}

// ForwardElimination reduces m in place to upper-triangular form over its
// pivot columns 0..min(rows, cols-1)-1.
//
// For each pivot column i and each row j below it, row j is replaced by
// row_j - (row_j[i] / row_i[i]) * row_i.
//
// Errors:
//   - ErrSingular when a pivot with rows left to eliminate is zero.
//
// Notes:
//   - m is mutated; on error m is left partially reduced. Callers that need
//     the original must Clone first (Solve and Nullspace do).
func (m *Matrix) ForwardElimination(opts ...Option) error {
	if m.cols == 0 {
		return nil
	}
	return m.eliminate(min(len(m.rows), m.cols-1), gatherOptions(opts...))
}

// eliminate runs elimination over the first `pivots` columns.
func (m *Matrix) eliminate(pivots int, o Options) error {
	var i, j int
	for i = 0; i < pivots; i++ {
		if i+1 >= len(m.rows) {
			break // nothing below this pivot
		}
		pivot := m.rows[i][i]
		if pivot.IsZero() {
			return matrixErrorf(opForwardElimination, fmt.Errorf("pivot (%d,%d): %w", i, i, ErrSingular))
		}
		for j = i + 1; j < len(m.rows); j++ {
			below := m.rows[j][i]
			if below.IsZero() {
				continue // already eliminated
			}
			factor, _ := below.Div(pivot) // pivot checked non-zero above
			m.rows[j] = m.rows[j].axpy(factor.Neg(), m.rows[i])
			o.tracef("%s: R%d -= (%s)·R%d", opForwardElimination, j, factor, i)
		}
	}
	return nil
}

// Solve solves the augmented system [A | b] held in m, with n = Cols()-1
// unknowns, and returns x with A·x = b.
//
// Implementation:
//   - Stage 1: require Rows() ≥ n (ErrNonSquare otherwise).
//   - Stage 2: forward elimination on a clone over pivot columns 0..n-1.
//   - Stage 3: surplus rows (index ≥ n) must reduce to 0 = 0 (ErrInconsistent).
//   - Stage 4: back substitution x_i = (b_i − Σ_{k>i} a_ik·x_k) / a_ii.
//
// Errors:
//   - ErrBadShape (no unknowns), ErrNonSquare, ErrSingular, ErrInconsistent.
//
// Notes:
//   - Solve does not reorder rows. Call NonZeroDiagonal(WithAugmented()) first
//     when the layout may have zero diagonal entries.
func (m *Matrix) Solve(opts ...Option) (Column, error) {
	o := gatherOptions(opts...)
	n := m.cols - 1
	if n < 1 {
		return nil, matrixErrorf(opSolve, ErrBadShape)
	}
	if len(m.rows) < n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%d equations, %d unknowns: %w", len(m.rows), n, ErrNonSquare))
	}

	work := m.Clone()
	if err := work.eliminate(n, o); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	for i := n; i < len(work.rows); i++ {
		if !work.rows[i][n].IsZero() {
			return nil, matrixErrorf(opSolve, fmt.Errorf("row %d: %w", i, ErrInconsistent))
		}
	}

	x := Zeros(n)
	var i, k int
	for i = n - 1; i >= 0; i-- {
		acc := work.rows[i][n]
		for k = i + 1; k < n; k++ {
			acc = acc.Sub(work.rows[i][k].Mul(x[k]))
		}
		xi, ok := acc.Div(work.rows[i][i])
		if !ok {
			return nil, matrixErrorf(opSolve, fmt.Errorf("pivot (%d,%d): %w", i, i, ErrSingular))
		}
		x[i] = xi
	}

	return x, nil
}

// Nullspace returns a non-trivial x with m·x = 0 for a coefficient matrix m
// (no augmentation column) with more unknowns than independent equations.
//
// Implementation:
//   - Stage 1: k = min(Rows(), Cols()-1) unknowns are solved for; the trailing
//     Cols()-k unknowns are free and fixed to 1.
//   - Stage 2: build the augmented system [A[:, :k] | −Σ_{j≥k} A[:, j]].
//   - Stage 3: NonZeroDiagonal(WithAugmented()), then refine that order by
//     exact row reduction so dependent rows become surplus rows, then Solve.
//   - Stage 4: pad the solution with 1 for every index ≥ k.
//
// Errors:
//   - ErrBadShape for an empty matrix, plus any error of NonZeroDiagonal/Solve.
//
// Notes:
//   - The result is exact and rational; scale by the LCM of denominators for
//     an integer representative.
func (m *Matrix) Nullspace(opts ...Option) (Column, error) {
	o := gatherOptions(opts...)
	if len(m.rows) == 0 || m.cols == 0 {
		return nil, matrixErrorf(opNullspace, ErrBadShape)
	}

	k := min(len(m.rows), m.cols-1)
	if k == 0 {
		return padOnes(nil, m.cols), nil
	}

	rs := make([]Row, len(m.rows))
	for i, r := range m.rows {
		row := make(Row, k+1)
		copy(row, r[:k])
		rhs := number.Zero
		for _, free := range r[k:] {
			rhs = rhs.Sub(free)
		}
		row[k] = rhs
		rs[i] = row
	}
	sys := &Matrix{rows: rs, cols: k + 1}

	reorder := append(append([]Option(nil), opts...), WithAugmented())
	ordered, err := sys.NonZeroDiagonal(reorder...)
	if err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}
	order, err := ordered.pivotOrder(k)
	if err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}
	if !isIdentity(order) {
		o.tracef("%s: pivot order %v", opNullspace, order)
		ordered = ordered.permute(order)
	}
	x, err := ordered.Solve(opts...)
	if err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}
	o.tracef("%s: bound %d unknowns, %d free", opNullspace, k, m.cols-k)

	return padOnes(x, m.cols), nil
}

// pivotOrder returns a row order under which elimination over columns
// 0..pivots-1 meets no zero pivot. For each column the first remaining row
// (in current order) whose reduced entry is non-zero becomes the pivot row;
// rows never chosen keep their relative order at the end. An order that
// already eliminates cleanly comes back as the identity.
//
// Errors:
//   - ErrSingular when some pivot column has no non-zero reduced entry,
//     i.e. the first `pivots` columns are rank deficient.
func (m *Matrix) pivotOrder(pivots int) ([]int, error) {
	work := m.Clone()
	n := len(work.rows)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	var i, j, p int
	for i = 0; i < pivots && i < n; i++ {
		p = -1
		for j = i; j < n; j++ {
			if !work.rows[j][i].IsZero() {
				p = j
				break
			}
		}
		if p < 0 {
			return nil, fmt.Errorf("column %d has no independent row: %w", i, ErrSingular)
		}
		if p != i {
			// rotate p up to i so the skipped rows keep their order
			row, id := work.rows[p], order[p]
			copy(work.rows[i+1:p+1], work.rows[i:p])
			copy(order[i+1:p+1], order[i:p])
			work.rows[i], order[i] = row, id
		}
		for j = i + 1; j < n; j++ {
			below := work.rows[j][i]
			if below.IsZero() {
				continue
			}
			factor, _ := below.Div(work.rows[i][i]) // non-zero by choice of p
			work.rows[j] = work.rows[j].axpy(factor.Neg(), work.rows[i])
		}
	}
	return order, nil
}

func isIdentity(order []int) bool {
	for i, v := range order {
		if i != v {
			return false
		}
	}
	return true
}

// padOnes extends x with 1 up to length n.
func padOnes(x Column, n int) Column {
	out := x.Clone()
	for len(out) < n {
		out = append(out, number.One)
	}
	return out
}
