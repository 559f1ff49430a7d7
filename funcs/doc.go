// SPDX-License-Identifier: MIT

// Package funcs implements pattern-matched function declarations over
// expr trees and the evaluator that folds them over an expression.
//
// A declaration names a call path of one or two segments:
//
//	nm(value)                       matches  nm(250)
//	energy => photon(wavelength=…)  matches  energy(photon(wavelength=…))
//
// plus a positional arity, a set of required keyword names and a body. The
// body receives arguments already converted by the declared Conv
// (AsExpr, AsRat, AsInt). A declaration that does not match, or whose
// conversion or body fails, hands the source back unchanged with ok=false:
// "no match" is control flow, never an error.
//
// Declarations are built once and never mutated:
//
//	decl := funcs.Define("nm").
//		Arg("value", funcs.AsRat).
//		Body(func(a funcs.Args) (expr.Expr, bool) {
//			return expr.Mul(expr.Lit(a.Rat("value")), expr.Constant(expr.Nanometer)), true
//		})
//
// Registry.Apply folds an ordered list of declarations over one expression:
// each declaration in turn sees the current (possibly already rewritten)
// value, and registration order decides between overlapping shapes. Apply
// is one linear pass. It neither iterates to a fixpoint nor descends into
// sub-expressions; ApplyDeep drives Apply bottom-up over the whole tree.
package funcs
