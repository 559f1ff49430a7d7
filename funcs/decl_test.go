// SPDX-License-Identifier: MIT

package funcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemeval/expr"
	"github.com/katalvlaran/chemeval/funcs"
)

func yields(v int64) funcs.Body {
	return func(funcs.Args) (expr.Expr, bool) { return expr.Int(v), true }
}

func TestDefine_Shape(t *testing.T) {
	d := funcs.Define("energy", "photon").
		Arg("x", funcs.AsExpr).
		Keyword("wavelength", funcs.AsExpr).
		Arg("y", funcs.AsRat).
		Body(yields(1))

	assert.Equal(t, []string{"energy", "photon"}, d.Path)
	assert.Equal(t, 2, d.PosArgs)
	assert.Equal(t, []string{"wavelength"}, d.KeyArgs)
	assert.Equal(t, "energy => photon", d.Name())
	assert.Equal(t, "energy => photon(x, wavelength=, y)", d.Signature())
}

func TestDefine_Panics(t *testing.T) {
	assert.Panics(t, func() { funcs.Define("f").Arg("x", nil) })
	assert.Panics(t, func() { funcs.Define("f").Arg("x", funcs.AsExpr).Keyword("x", funcs.AsExpr) })
	assert.Panics(t, func() { funcs.Define("f").Body(nil) })
}

func TestCall_OneSegment(t *testing.T) {
	d := funcs.Define("nm").Arg("value", funcs.AsRat).Body(func(a funcs.Args) (expr.Expr, bool) {
		return expr.Mul(expr.Lit(a.Rat("value")), expr.Constant("nm")), true
	})

	out, ok := d.Call(expr.MustParse("nm(250)"))
	require.True(t, ok)
	assert.Equal(t, "250 * nm", out.String())

	for _, src := range []string{
		"GHz(250)",      // name
		"nm(1, 2)",      // arity
		"nm()",          // arity
		"nm(c)",         // conversion fails: not a literal
		"nm(2 * 3)",     // conversion fails: compound
		"250",           // not a call
		"energy(nm(1))", // one-segment paths never look inside
	} {
		in := expr.MustParse(src)
		got, ok := d.Call(in)
		assert.False(t, ok, src)
		assert.Same(t, in, got, "no match must hand back the source: %s", src)
	}
}

func TestCall_ExtraKeywordsTolerated(t *testing.T) {
	d := funcs.Define("period").Keyword("frequency", funcs.AsExpr).Body(func(a funcs.Args) (expr.Expr, bool) {
		return a.Expr("frequency"), true
	})
	out, ok := d.Call(expr.MustParse("period(frequency=f, unit=s)"))
	require.True(t, ok)
	assert.Equal(t, "f", out.String())

	_, ok = d.Call(expr.MustParse("period(unit=s)"))
	assert.False(t, ok, "required keyword missing")
}

func TestCall_TwoSegments(t *testing.T) {
	d := funcs.Define("energy", "photon").Keyword("wavelength", funcs.AsExpr).Body(func(a funcs.Args) (expr.Expr, bool) {
		return a.Expr("wavelength"), true
	})

	out, ok := d.Call(expr.MustParse("energy(photon(wavelength=nm(325)))"))
	require.True(t, ok)
	assert.Equal(t, "nm(325)", out.String())

	// the outer call may carry more arguments; checks apply to the inner call
	_, ok = d.Call(expr.MustParse("energy(photon(wavelength=1), 2, k=3)"))
	assert.True(t, ok)

	for _, src := range []string{
		"energy()",
		"energy(1)",
		"energy(x=photon(wavelength=1))",
		"energy(electron(wavelength=1))",
		"power(photon(wavelength=1))",
		"energy(photon(1, wavelength=1))",
		"photon(wavelength=1)",
	} {
		_, ok := d.Call(expr.MustParse(src))
		assert.False(t, ok, src)
	}
}

func TestCall_OtherPathLengthsNeverMatch(t *testing.T) {
	for _, d := range []*funcs.FunctionDecl{
		funcs.Define().Body(yields(1)),
		funcs.Define("a", "b", "c").Body(yields(1)),
	} {
		_, ok := d.Call(expr.MustParse("a(b(c()))"))
		assert.False(t, ok)
		_, ok = d.Call(expr.MustParse("a()"))
		assert.False(t, ok)
	}
}

func TestCall_BodyRefusal(t *testing.T) {
	d := funcs.Define("f").Body(func(funcs.Args) (expr.Expr, bool) { return nil, false })
	in := expr.MustParse("f()")
	out, ok := d.Call(in)
	assert.False(t, ok)
	assert.Same(t, in, out)

	nilResult := funcs.Define("f").Body(func(funcs.Args) (expr.Expr, bool) { return nil, true })
	_, ok = nilResult.Call(in)
	assert.False(t, ok)
}

func TestCall_BindingOrder(t *testing.T) {
	var got []string
	d := funcs.Define("f").
		Arg("a", funcs.AsExpr).
		Keyword("k", funcs.AsInt).
		Arg("b", funcs.AsExpr).
		Body(func(a funcs.Args) (expr.Expr, bool) {
			got = []string{a.Expr("a").String(), a.Int("k").String(), a.Expr("b").String()}
			return expr.Int(0), true
		})

	_, ok := d.Call(expr.MustParse("f(x, y, k=7/2)"))
	require.True(t, ok)
	assert.Equal(t, []string{"x", "3", "y"}, got, "positional left to right; AsInt truncates")
}

func TestConversions(t *testing.T) {
	v, ok := funcs.AsRat(expr.MustParse("-7/2"))
	require.True(t, ok)
	assert.Equal(t, "-7/2", v.(interface{ String() string }).String())

	v, ok = funcs.AsInt(expr.MustParse("-7/2"))
	require.True(t, ok)
	assert.Equal(t, "-3", v.(interface{ String() string }).String())

	_, ok = funcs.AsInt(expr.Constant("c"))
	assert.False(t, ok)
	_, ok = funcs.AsRat(expr.MustParse("f(1)"))
	assert.False(t, ok)
	_, ok = funcs.AsExpr(nil)
	assert.False(t, ok)
}

func TestArgsTypeMismatchPanics(t *testing.T) {
	d := funcs.Define("f").Arg("x", funcs.AsExpr).Body(func(a funcs.Args) (expr.Expr, bool) {
		return expr.Lit(a.Rat("x")), true
	})
	assert.Panics(t, func() { d.Call(expr.MustParse("f(1)")) })
}
