// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for builders and kernels.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemeval/matrix"
	"github.com/katalvlaran/chemeval/number"
)

// MustInts builds a matrix from integer literals or fails the test.
func MustInts(t *testing.T, rows [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)
	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) number.Number {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// Strings renders a column for compact comparisons.
func Strings(c matrix.Column) []string {
	out := make([]string, len(c))
	for i, x := range c {
		out[i] = x.String()
	}
	return out
}
