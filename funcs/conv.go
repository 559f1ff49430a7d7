// SPDX-License-Identifier: MIT

package funcs

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/chemeval/expr"
	"github.com/katalvlaran/chemeval/number"
)

// Conv converts a bound argument to the type the body expects. ok=false
// aborts the body and the declaration reports no match.
type Conv func(expr.Expr) (any, bool)

// AsExpr passes the argument through unchanged.
func AsExpr(e expr.Expr) (any, bool) { return e, e != nil }

// AsRat unwraps a literal into its number.Number value.
func AsRat(e expr.Expr) (any, bool) {
	n, ok := expr.AsNum(e)
	if !ok {
		return nil, false
	}
	return n, true
}

// AsInt unwraps a literal into its integer part (truncated toward zero).
func AsInt(e expr.Expr) (any, bool) {
	n, ok := expr.AsNum(e)
	if !ok {
		return nil, false
	}
	return n.Integer(), true
}

// Args holds the converted arguments of a matched call, keyed by parameter
// name. Accessors panic when the declared Conv produced another type.
type Args struct {
	vals map[string]any
}

// Value returns the raw converted value of name.
func (a Args) Value(name string) (any, bool) {
	v, ok := a.vals[name]
	return v, ok
}

// Expr returns an argument bound with AsExpr.
func (a Args) Expr(name string) expr.Expr { return mustArg[expr.Expr](a, name) }

// Rat returns an argument bound with AsRat.
func (a Args) Rat(name string) number.Number { return mustArg[number.Number](a, name) }

// Int returns an argument bound with AsInt.
func (a Args) Int(name string) *big.Int { return mustArg[*big.Int](a, name) }

func mustArg[T any](a Args, name string) T {
	v, ok := a.vals[name].(T)
	if !ok {
		panic(fmt.Sprintf("funcs: argument %q is %T, not %T", name, a.vals[name], v))
	}
	return v
}
