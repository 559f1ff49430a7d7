// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms MUST return these sentinels (optionally wrapped with an
// operation tag via %w) and tests MUST check them via errors.Is.
// No exported function panics on data-dependent conditions; option
// constructors panic on nonsensical parameters (programmer error).

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is empty where a
	// non-empty one is required (e.g. ColumnVector of no values).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates rows of unequal length, or operands with
	// incompatible dimensions (Dot, ReplaceRow, PushColumn, Row.Add).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals a system with fewer equations than unknowns where
	// a unique solution was requested.
	ErrNonSquare = errors.New("matrix: system is not square")

	// ErrSingular is returned when a zero pivot is met during elimination or
	// back substitution (no pivoting past the initial reordering).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInconsistent is returned when a surplus equation reduces to 0 = c, c ≠ 0.
	ErrInconsistent = errors.New("matrix: inconsistent system")

	// ErrReorderingFailed is returned by NonZeroDiagonal when no row order
	// gives a non-zero leading diagonal.
	ErrReorderingFailed = errors.New("matrix: cannot reorder rows to a non-zero diagonal")

	// ErrDivByZero is returned by DivEach for an exact zero divisor.
	ErrDivByZero = errors.New("matrix: division by zero")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
