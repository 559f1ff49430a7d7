// SPDX-License-Identifier: MIT

// Package expr defines the symbolic expression tree rewritten by package
// funcs.
//
// An Expr is one of:
//
//	*Num       exact rational literal (number.Number)
//	*Con       named constant or unit symbol: c, h, N_A, nm, GHz, ...
//	*Product   n-ary product of terms
//	*Fraction  numerator over denominator
//	*Call      named call with positional and keyword arguments
//
// Values are immutable. Constructors copy the slices and maps they are
// given, and every rewrite (Transform) returns a new tree.
//
// Text form:
//
//	nm(250)
//	energy(photon(wavelength=nm(325)))
//	(c * h) / (250 * nm)
//
// Parse reads that form back; String produces it. Parse(e.String()) is
// structurally Equal to e whenever every product is non-empty and every
// name is an identifier.
package expr
