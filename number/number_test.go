// SPDX-License-Identifier: MIT

package number_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemeval/number"
)

func TestArithmetic(t *testing.T) {
	a := number.Frac(1, 3)
	b := number.Int(2)

	assert.Equal(t, "7/3", a.Add(b).String())
	assert.Equal(t, "-5/3", a.Sub(b).String())
	assert.Equal(t, "2/3", a.Mul(b).String())
	assert.Equal(t, "-1/3", a.Neg().String())
	assert.Equal(t, "1/3", a.Neg().Abs().String())

	q, ok := a.Div(b)
	require.True(t, ok)
	assert.Equal(t, "1/6", q.String())
	assert.Equal(t, "8", b.Pow(3).String())
}

func TestDivByZero(t *testing.T) {
	q, ok := number.Int(5).Div(number.Zero)
	assert.False(t, ok)
	assert.True(t, q.IsZero())

	_, ok = number.Zero.Inv()
	assert.False(t, ok)
}

func TestZeroValueIsUsable(t *testing.T) {
	var z number.Number
	assert.True(t, z.IsZero())
	assert.True(t, z.IsInt())
	assert.Equal(t, "0", z.String())
	assert.Equal(t, "3", z.Add(number.Int(3)).String())
}

func TestOperandsAreNotMutated(t *testing.T) {
	a := number.Int(4)
	_ = a.Add(number.Int(1))
	_ = a.Mul(number.Int(7))
	assert.Equal(t, "4", a.String())

	r := a.Rat()
	r.SetInt64(99)
	assert.Equal(t, "4", a.String())
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"12", "12"},
		{"0.25", "1/4"},
		{"3/6", "1/2"},
		{"-4", "-4"},
	} {
		n, err := number.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, n.String(), tc.in)
	}

	_, err := number.Parse("abc")
	require.ErrorIs(t, err, number.ErrSyntax)
	_, err = number.Parse("")
	require.ErrorIs(t, err, number.ErrSyntax)
}

func TestIntegerViews(t *testing.T) {
	v, ok := number.Int(42).Int64()
	require.True(t, ok)
	assert.Equal(t, int64(42), v)

	_, ok = number.Frac(7, 2).Int64()
	assert.False(t, ok)
	assert.Equal(t, "3", number.Frac(7, 2).Integer().String())
	assert.Equal(t, "-3", number.Frac(-7, 2).Integer().String())
	assert.Equal(t, "-7", number.Frac(-7, 2).Num().String())
	assert.Equal(t, "2", number.Frac(-7, 2).Denom().String())
}

func TestOrdering(t *testing.T) {
	assert.True(t, number.Frac(1, 3).Less(number.Frac(1, 2)))
	assert.Equal(t, 0, number.Frac(2, 4).Cmp(number.Frac(1, 2)))
	assert.Equal(t, -1, number.Int(-3).Sign())
}

func TestLCMAndGCD(t *testing.T) {
	xs := []number.Number{number.Frac(1, 4), number.Frac(5, 6), number.Int(1)}
	assert.Equal(t, "12", number.LCMDenominators(xs).String())

	ys := []number.Number{number.Int(4), number.Int(-6), number.Zero}
	assert.Equal(t, "2", number.GCDNumerators(ys).String())
	assert.Equal(t, "1/2", number.Sum(number.Frac(1, 4), number.Frac(1, 4)).String())
}
