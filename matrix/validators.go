// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape and index checks.
//   - Return plain sentinel errors wrapped with the validator tag so call sites
//     can wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; none allocate beyond the error.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateRows ensures every row has the same length.
//
// Inputs: candidate rows (possibly empty).
// Returns the common width (0 for no rows) or ErrDimensionMismatch naming the
// first offending row.
// Complexity: O(len(rows)).
func ValidateRows(rows []Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return 0, validatorErrorf(
				fmt.Sprintf("ValidateRows: row %d has %d entries, want %d", i, len(rows[i]), width),
				ErrDimensionMismatch,
			)
		}
	}
	return width, nil
}

// ValidateIndex ensures (i, j) addresses a cell of m.
func ValidateIndex(m *Matrix, i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", i, j), ErrOutOfRange)
	}
	return nil
}

// ValidateRange ensures 0 ≤ lo ≤ hi ≤ n.
func ValidateRange(lo, hi, n int) error {
	if lo < 0 || hi < lo || hi > n {
		return validatorErrorf(fmt.Sprintf("ValidateRange[%d:%d] of %d", lo, hi, n), ErrOutOfRange)
	}
	return nil
}

// ValidateVecLen ensures a vector has length n.
func ValidateVecLen(n, want int) error {
	if n != want {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(%d, want %d)", n, want), ErrDimensionMismatch)
	}
	return nil
}
