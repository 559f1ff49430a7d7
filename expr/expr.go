// SPDX-License-Identifier: MIT

package expr

import (
	"sort"
	"strings"

	"github.com/katalvlaran/chemeval/number"
)

// Expr is a node of the expression tree. The set of implementations is
// closed: *Num, *Con, *Product, *Fraction, *Call.
type Expr interface {
	String() string
	isExpr()
}

// Num is an exact rational literal.
type Num struct {
	Value number.Number
}

// Con is a named constant or unit symbol.
type Con struct {
	Name string
}

// Product multiplies its terms.
type Product struct {
	Terms []Expr
}

// Fraction divides Numerator by Denominator.
type Fraction struct {
	Numerator   Expr
	Denominator Expr
}

// Call is a named call. Pos keeps argument order; Key is keyed by name.
type Call struct {
	Name string
	Pos  []Expr
	Key  map[string]Expr
}

func (*Num) isExpr()      {}
func (*Con) isExpr()      {}
func (*Product) isExpr()  {}
func (*Fraction) isExpr() {}
func (*Call) isExpr()     {}

// Symbols of the built-in physical constants and units.
const (
	SpeedOfLight    = "c"
	PlanckConstant  = "h"
	AvogadroNumber  = "N_A"
	RydbergConstant = "R_H"
	Gigahertz       = "GHz"
	Megahertz       = "MHz"
	Nanometer       = "nm"
)

// Lit wraps n as a literal.
func Lit(n number.Number) *Num { return &Num{Value: n} }

// Int is Lit(number.Int(n)).
func Int(n int64) *Num { return Lit(number.Int(n)) }

// Constant returns the symbol name.
func Constant(name string) *Con { return &Con{Name: name} }

// Mul builds a product over a copy of terms.
func Mul(terms ...Expr) *Product {
	return &Product{Terms: append([]Expr(nil), terms...)}
}

// Ratio builds numerator / denominator.
func Ratio(numerator, denominator Expr) *Fraction {
	return &Fraction{Numerator: numerator, Denominator: denominator}
}

// UnitFraction builds 1 / denominator.
func UnitFraction(denominator Expr) *Fraction {
	return Ratio(Int(1), denominator)
}

// NewCall builds a call over copies of pos and key. A nil key is allowed.
func NewCall(name string, pos []Expr, key map[string]Expr) *Call {
	c := &Call{Name: name, Pos: append([]Expr(nil), pos...), Key: make(map[string]Expr, len(key))}
	for k, v := range key {
		c.Key[k] = v
	}
	return c
}

// Keyword returns the keyword argument name, if present.
func (c *Call) Keyword(name string) (Expr, bool) {
	v, ok := c.Key[name]
	return v, ok
}

// KeyNames returns the keyword names in ascending order.
func (c *Call) KeyNames() []string {
	names := make([]string, 0, len(c.Key))
	for k := range c.Key {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AsCall returns e as a call, if it is one.
func AsCall(e Expr) (*Call, bool) {
	c, ok := e.(*Call)
	return c, ok && c != nil
}

// AsNum returns the literal value of e, if e is a literal.
func AsNum(e Expr) (number.Number, bool) {
	n, ok := e.(*Num)
	if !ok || n == nil {
		return number.Zero, false
	}
	return n.Value, true
}

// ---------- printing ----------

func (n *Num) String() string { return n.Value.String() }

func (c *Con) String() string { return c.Name }

func (p *Product) String() string {
	parts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		parts[i] = operand(t)
	}
	return strings.Join(parts, " * ")
}

func (f *Fraction) String() string {
	return operand(f.Numerator) + " / " + operand(f.Denominator)
}

func (c *Call) String() string {
	args := make([]string, 0, len(c.Pos)+len(c.Key))
	for _, a := range c.Pos {
		args = append(args, a.String())
	}
	for _, k := range c.KeyNames() {
		args = append(args, k+"="+c.Key[k].String())
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// operand parenthesizes composite operands of * and /.
func operand(e Expr) string {
	switch e.(type) {
	case *Product, *Fraction:
		return "(" + e.String() + ")"
	}
	return e.String()
}

// ---------- structural equality ----------

// Equal reports structural equality. Keyword order never matters.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Num:
		y, ok := b.(*Num)
		return ok && x.Value.Equal(y.Value)
	case *Con:
		y, ok := b.(*Con)
		return ok && x.Name == y.Name
	case *Product:
		y, ok := b.(*Product)
		return ok && equalAll(x.Terms, y.Terms)
	case *Fraction:
		y, ok := b.(*Fraction)
		return ok && Equal(x.Numerator, y.Numerator) && Equal(x.Denominator, y.Denominator)
	case *Call:
		y, ok := b.(*Call)
		if !ok || x.Name != y.Name || !equalAll(x.Pos, y.Pos) || len(x.Key) != len(y.Key) {
			return false
		}
		for k, v := range x.Key {
			w, found := y.Key[k]
			if !found || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

func equalAll(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
