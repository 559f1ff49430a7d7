// SPDX-License-Identifier: MIT

package expr

// Transform rebuilds e bottom-up: children are transformed first, then f is
// applied to the rebuilt node. f must not return nil.
//
// The input tree is never modified.
func Transform(e Expr, f func(Expr) Expr) Expr {
	switch x := e.(type) {
	case *Product:
		terms := make([]Expr, len(x.Terms))
		for i, t := range x.Terms {
			terms[i] = Transform(t, f)
		}
		return f(&Product{Terms: terms})
	case *Fraction:
		return f(&Fraction{
			Numerator:   Transform(x.Numerator, f),
			Denominator: Transform(x.Denominator, f),
		})
	case *Call:
		c := &Call{Name: x.Name, Pos: make([]Expr, len(x.Pos)), Key: make(map[string]Expr, len(x.Key))}
		for i, a := range x.Pos {
			c.Pos[i] = Transform(a, f)
		}
		for k, v := range x.Key {
			c.Key[k] = Transform(v, f)
		}
		return f(c)
	default:
		return f(e)
	}
}

// Walk visits e and every sub-expression in pre-order. Returning false from
// visit skips the children of that node.
func Walk(e Expr, visit func(Expr) bool) {
	if !visit(e) {
		return
	}
	switch x := e.(type) {
	case *Product:
		for _, t := range x.Terms {
			Walk(t, visit)
		}
	case *Fraction:
		Walk(x.Numerator, visit)
		Walk(x.Denominator, visit)
	case *Call:
		for _, a := range x.Pos {
			Walk(a, visit)
		}
		for _, k := range x.KeyNames() {
			Walk(x.Key[k], visit)
		}
	}
}
