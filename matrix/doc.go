// SPDX-License-Identifier: MIT

// Package matrix is a small, exact linear-algebra engine over number.Number.
//
// The package provides:
//
//   - Row and Column: thin ordered sequences of numbers with element-wise and
//     scalar operations.
//   - Matrix: a row-major sequence of equal-length Rows. Every public builder
//     and mutation validates the uniform-length invariant and reports
//     ErrDimensionMismatch instead of producing a ragged matrix.
//   - NonZeroDiagonal: row reordering so that row i is non-zero in column i,
//     the precondition for elimination without pivoting.
//   - ForwardElimination, Solve and Nullspace: Gaussian elimination and back
//     substitution in exact arithmetic. A zero pivot is never approximated;
//     it surfaces as ErrSingular.
//
// Augmented matrices: Solve treats the last column as the right-hand side.
// Nullspace takes a plain coefficient matrix and returns one representative
// of its null space, with trailing free unknowns fixed to 1.
//
// Matrices are best for the small, dense systems met when balancing chemical
// equations (a handful of elements by a handful of terms).
package matrix
