// SPDX-License-Identifier: MIT

package funcs

import (
	"github.com/katalvlaran/chemeval/expr"
	"github.com/katalvlaran/chemeval/number"
)

// Builtins returns the physics declarations in priority order:
//
//	mole(value)                          value · N_A
//	GHz(value), MHz(value), nm(value)    value · unit          (literal value)
//	energy => photon(wavelength=λ)       (c · h) / λ
//	energy => photon(frequency=ν)        h · ν
//	frequency(wavelength=λ)              c / λ
//	wavelength(frequency=ν)              c / ν
//	period(frequency=ν)                  1 / ν
//	energy(from=electron(n=a), to=electron(n=b))
//	                                     R_H · (1/a² − 1/b²)
//
// Each call returns fresh declarations.
func Builtins() []*FunctionDecl {
	return []*FunctionDecl{
		Define("mole").Arg("value", AsExpr).Body(func(a Args) (expr.Expr, bool) {
			return expr.Mul(a.Expr("value"), expr.Constant(expr.AvogadroNumber)), true
		}),
		unit(expr.Gigahertz),
		unit(expr.Megahertz),
		unit(expr.Nanometer),

		// E = h·ν = h·c/λ
		Define("energy", "photon").Keyword("wavelength", AsExpr).Body(func(a Args) (expr.Expr, bool) {
			hc := expr.Mul(expr.Constant(expr.SpeedOfLight), expr.Constant(expr.PlanckConstant))
			return expr.Ratio(hc, a.Expr("wavelength")), true
		}),
		Define("energy", "photon").Keyword("frequency", AsExpr).Body(func(a Args) (expr.Expr, bool) {
			return expr.Mul(expr.Constant(expr.PlanckConstant), a.Expr("frequency")), true
		}),

		// c = λ·ν
		Define("frequency").Keyword("wavelength", AsExpr).Body(func(a Args) (expr.Expr, bool) {
			return expr.Ratio(expr.Constant(expr.SpeedOfLight), a.Expr("wavelength")), true
		}),
		Define("wavelength").Keyword("frequency", AsExpr).Body(func(a Args) (expr.Expr, bool) {
			return expr.Ratio(expr.Constant(expr.SpeedOfLight), a.Expr("frequency")), true
		}),
		Define("period").Keyword("frequency", AsExpr).Body(func(a Args) (expr.Expr, bool) {
			return expr.UnitFraction(a.Expr("frequency")), true
		}),

		rydberg(),
	}
}

// unit declares name(value) -> value · name for a literal value.
func unit(name string) *FunctionDecl {
	return Define(name).Arg("value", AsRat).Body(func(a Args) (expr.Expr, bool) {
		return expr.Mul(expr.Lit(a.Rat("value")), expr.Constant(name)), true
	})
}

// electronLevel maps electron(n=k) to the literal 1/k².
var electronLevel = Define("electron").Keyword("n", AsInt).Body(func(a Args) (expr.Expr, bool) {
	n := number.FromBigInt(a.Int("n"))
	inv, ok := n.Mul(n).Inv()
	if !ok {
		return nil, false
	}
	return expr.Lit(inv), true
})

// rydberg declares the hydrogen transition energy between two levels.
func rydberg() *FunctionDecl {
	level := func(e expr.Expr) (number.Number, bool) {
		out, ok := electronLevel.Call(e)
		if !ok {
			return number.Zero, false
		}
		return expr.AsNum(out)
	}
	return Define("energy").Keyword("from", AsExpr).Keyword("to", AsExpr).Body(func(a Args) (expr.Expr, bool) {
		from, ok := level(a.Expr("from"))
		if !ok {
			return nil, false
		}
		to, ok := level(a.Expr("to"))
		if !ok {
			return nil, false
		}
		return expr.Mul(expr.Constant(expr.RydbergConstant), expr.Lit(from.Sub(to))), true
	})
}
