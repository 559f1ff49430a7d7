// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemeval/matching"
	"github.com/katalvlaran/chemeval/matrix"
	"github.com/katalvlaran/chemeval/number"
)

func TestNonZeroDiagonal_Swaps(t *testing.T) {
	m := MustInts(t, [][]int64{{0, 1}, {1, 0}})
	for _, opt := range []matrix.Option{matrix.WithAugmentingOrdering(), matrix.WithGreedyOrdering()} {
		got, err := m.NonZeroDiagonal(opt)
		require.NoError(t, err)
		assert.True(t, got.Equal(MustInts(t, [][]int64{{1, 0}, {0, 1}})))
	}
	// the receiver is untouched
	assert.Equal(t, "0", MustAt(t, m, 0, 0).String())
}

func TestNonZeroDiagonal_KeepsValidLayout(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 1, 0}, {1, 1, 0}, {0, 1, 1}})
	got, err := m.NonZeroDiagonal()
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestNonZeroDiagonal_Augmented(t *testing.T) {
	// Only the last row can sit at position 1 once the RHS column is excluded.
	m := MustInts(t, [][]int64{{1, 0, 5}, {1, 0, 0}, {0, 3, 0}})
	got, err := m.NonZeroDiagonal(matrix.WithAugmented())
	require.NoError(t, err)
	assert.True(t, got.Equal(MustInts(t, [][]int64{{1, 0, 5}, {0, 3, 0}, {1, 0, 0}})))
}

func TestNonZeroDiagonal_Failure(t *testing.T) {
	m := MustInts(t, [][]int64{{0, 1}, {0, 1}})

	_, err := m.NonZeroDiagonal()
	require.ErrorIs(t, err, matrix.ErrReorderingFailed)
	require.ErrorIs(t, err, matching.ErrNoPerfectMatching)

	_, err = m.NonZeroDiagonal(matrix.WithGreedyOrdering(), matrix.WithMaxPasses(3))
	require.ErrorIs(t, err, matrix.ErrReorderingFailed)
	require.ErrorIs(t, err, matching.ErrNotConverged)
}

func TestForwardElimination(t *testing.T) {
	m := MustInts(t, [][]int64{{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3}})
	require.NoError(t, m.ForwardElimination())

	// below-diagonal entries are zero
	assert.True(t, MustAt(t, m, 1, 0).IsZero())
	assert.True(t, MustAt(t, m, 2, 0).IsZero())
	assert.True(t, MustAt(t, m, 2, 1).IsZero())

	z := MustInts(t, [][]int64{{0, 1, 1}, {1, 1, 1}})
	require.ErrorIs(t, z.ForwardElimination(), matrix.ErrSingular)
}

func TestSolve(t *testing.T) {
	// 2x + y − z = 8, −3x − y + 2z = −11, −2x + y + 2z = −3 ⇒ (2, 3, −1)
	m := MustInts(t, [][]int64{{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3}})
	x, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "-1"}, Strings(x))

	// fractions stay exact
	f := MustInts(t, [][]int64{{3, 1}, {0, 0}})
	x, err = f.Solve()
	require.NoError(t, err)
	assert.Equal(t, []string{"1/3"}, Strings(x))
}

func TestSolve_Failures(t *testing.T) {
	_, err := MustInts(t, [][]int64{{1, 1, 1, 0}}).Solve()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = MustInts(t, [][]int64{{1, 0, 1}, {0, 1, 1}, {1, 1, 3}}).Solve()
	require.ErrorIs(t, err, matrix.ErrInconsistent)

	_, err = MustInts(t, [][]int64{{1, 1, 2}, {1, 1, 3}}).Solve()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = MustInts(t, [][]int64{{4}}).Solve()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNullspace_RankDeficient3x4 checks a 3×4 homogeneous system:
// the result is non-trivial and annihilated by the original matrix.
func TestNullspace_RankDeficient3x4(t *testing.T) {
	m := MustInts(t, [][]int64{{8, 0, 0, -2}, {0, 2, -2, -1}, {3, 0, -1, 0}})
	x, err := m.Nullspace()
	require.NoError(t, err)
	assert.Equal(t, []string{"1/4", "5/4", "3/4", "1"}, Strings(x))

	prod, err := m.MulVec(x)
	require.NoError(t, err)
	for _, v := range prod {
		assert.True(t, v.IsZero())
	}
}

// TestNullspace_WaterFormation reproduces H2 + O2 -> H2O: ratio 2:1:2.
func TestNullspace_WaterFormation(t *testing.T) {
	aug := MustInts(t, [][]int64{{2, 0, -2, 0}, {0, 2, -1, 0}})
	ordered, err := aug.NonZeroDiagonal(matrix.WithAugmented())
	require.NoError(t, err)

	coeffs, err := ordered.Slice(0, ordered.Rows(), 0, ordered.Cols()-1)
	require.NoError(t, err)
	x, err := coeffs.Nullspace()
	require.NoError(t, err)
	require.Len(t, x, 3)

	scaled := x.MulEach(number.Int(2))
	assert.Equal(t, []string{"2", "1", "2"}, Strings(scaled))
}

func TestNullspace_MoreEquationsThanBound(t *testing.T) {
	// PCl5 + H2O -> H3PO4 + HCl over rows Cl, H, O, P.
	m := MustInts(t, [][]int64{
		{5, 0, 0, -1},
		{0, 2, -3, -1},
		{0, 1, -4, 0},
		{1, 0, -1, 0},
	})
	x, err := m.Nullspace(matrix.WithGreedyOrdering())
	require.NoError(t, err)
	assert.Equal(t, []string{"1/5", "4/5", "1/5", "1"}, Strings(x))
}

// TestNullspace_ProportionalRows covers KClO3 -> KCl + O2 over rows Cl, K, O:
// the Cl and K rows are equal, so one of them must end up a surplus row.
func TestNullspace_ProportionalRows(t *testing.T) {
	m := MustInts(t, [][]int64{{1, -1, 0}, {1, -1, 0}, {3, 0, -2}})
	for _, opt := range []matrix.Option{matrix.WithAugmentingOrdering(), matrix.WithGreedyOrdering()} {
		var buf bytes.Buffer
		x, err := m.Nullspace(opt, matrix.WithLogger(log.New(&buf, "", 0)))
		require.NoError(t, err)
		assert.Equal(t, []string{"2/3", "2/3", "1"}, Strings(x))
		assert.Contains(t, buf.String(), "pivot order [0 2 1]")

		prod, err := m.MulVec(x)
		require.NoError(t, err)
		for _, v := range prod {
			assert.True(t, v.IsZero())
		}
	}
}

// TestNullspace_ZeroPivotAfterElimination has a non-zero diagonal whose
// second pivot vanishes after the first elimination step.
func TestNullspace_ZeroPivotAfterElimination(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 1, 0, -2}, {1, 1, 1, -3}, {0, 1, 1, -2}})
	x, err := m.Nullspace()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1", "1", "1"}, Strings(x))
}

func TestNullspace_RankDeficientBlock(t *testing.T) {
	_, err := MustInts(t, [][]int64{{1, -1, 0}, {2, -2, 0}}).Nullspace()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestNullspace_Degenerate(t *testing.T) {
	x, err := MustInts(t, [][]int64{{0}}).Nullspace()
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, Strings(x))

	_, err = matrix.New().Nullspace()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestLoggerTracesSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	m := MustInts(t, [][]int64{{0, 1, 1}, {1, 1, 2}})
	ordered, err := m.NonZeroDiagonal(matrix.WithLogger(logger), matrix.WithAugmented())
	require.NoError(t, err)
	require.Equal(t, 2, ordered.Rows())

	_, err = MustInts(t, [][]int64{{1, 1, 3}, {1, -1, 1}}).Solve(matrix.WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "row order [1 0]")
	assert.Contains(t, buf.String(), "ForwardElimination")
}

func TestOptions(t *testing.T) {
	o := matrix.NewOptions()
	assert.Equal(t, matrix.OrderingAugmenting, o.Ordering())
	assert.Equal(t, matrix.DefaultMaxPasses, o.MaxPasses())
	assert.False(t, o.Augmented())

	o = matrix.NewOptions(matrix.WithOrdering(matrix.OrderingGreedy), matrix.WithMaxPasses(7), matrix.WithAugmented())
	assert.Equal(t, "greedy", o.Ordering().String())
	assert.Equal(t, 7, o.MaxPasses())
	assert.True(t, o.Augmented())

	assert.Panics(t, func() { matrix.WithMaxPasses(0) })
}
