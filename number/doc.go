// SPDX-License-Identifier: MIT

// Package number provides Number, the exact rational scalar used by every
// numeric component of chemeval (matrix entries, formula subscripts and
// coefficients, expression literals).
//
// Number is an immutable value: arithmetic never mutates an operand and
// always returns a fresh result. The zero value is a valid 0.
//
// Division is the only fallible operation. Div reports ok=false on an exact
// zero divisor instead of panicking, so that callers (elimination, back
// substitution) can promote the failure to a typed error of their own.
//
//	a := number.Frac(1, 3)
//	b := number.Int(2)
//	q, ok := a.Div(b) // 1/6, true
package number
