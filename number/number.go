// SPDX-License-Identifier: MIT

package number

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrSyntax is returned by Parse when the input is not a rational literal.
var ErrSyntax = errors.New("number: invalid rational literal")

// Number is an exact rational value. A nil r means zero.
type Number struct {
	r *big.Rat
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Number{}
	One  = Int(1)
)

// Int returns n as a Number.
func Int(n int64) Number {
	return Number{r: new(big.Rat).SetInt64(n)}
}

// Frac returns p/q. It panics when q == 0; a literal zero denominator is a
// programmer error.
func Frac(p, q int64) Number {
	if q == 0 {
		panic("number: Frac: zero denominator")
	}
	return Number{r: new(big.Rat).SetFrac64(p, q)}
}

// FromRat copies r into a Number. A nil r yields zero.
func FromRat(r *big.Rat) Number {
	if r == nil {
		return Zero
	}
	return Number{r: new(big.Rat).Set(r)}
}

// FromBigInt copies i into a Number.
func FromBigInt(i *big.Int) Number {
	if i == nil {
		return Zero
	}
	return Number{r: new(big.Rat).SetInt(i)}
}

// Parse reads an integer ("12"), a decimal ("0.25") or a fraction ("3/4").
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	return Number{r: r}, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// rat returns the receiver's value without copying. Callers must not mutate it.
func (n Number) rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}
	return n.r
}

// Rat returns a copy of the underlying rational.
func (n Number) Rat() *big.Rat { return new(big.Rat).Set(n.rat()) }

// Add returns n + m.
func (n Number) Add(m Number) Number {
	return Number{r: new(big.Rat).Add(n.rat(), m.rat())}
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number {
	return Number{r: new(big.Rat).Sub(n.rat(), m.rat())}
}

// Mul returns n * m.
func (n Number) Mul(m Number) Number {
	return Number{r: new(big.Rat).Mul(n.rat(), m.rat())}
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{r: new(big.Rat).Neg(n.rat())}
}

// Abs returns |n|.
func (n Number) Abs() Number {
	return Number{r: new(big.Rat).Abs(n.rat())}
}

// Div returns n / m. ok is false, and the result zero, when m is exactly zero.
func (n Number) Div(m Number) (q Number, ok bool) {
	if m.IsZero() {
		return Zero, false
	}
	return Number{r: new(big.Rat).Quo(n.rat(), m.rat())}, true
}

// Inv returns 1/n, or ok=false for zero.
func (n Number) Inv() (Number, bool) { return One.Div(n) }

// Pow returns n raised to a non-negative integer power.
func (n Number) Pow(e uint) Number {
	out := One
	for ; e > 0; e-- {
		out = out.Mul(n)
	}
	return out
}

// Cmp compares n and m and returns -1, 0 or +1.
func (n Number) Cmp(m Number) int { return n.rat().Cmp(m.rat()) }

// Equal reports n == m.
func (n Number) Equal(m Number) bool { return n.Cmp(m) == 0 }

// Less reports n < m.
func (n Number) Less(m Number) bool { return n.Cmp(m) < 0 }

// Sign returns -1, 0 or +1.
func (n Number) Sign() int { return n.rat().Sign() }

// IsZero reports n == 0.
func (n Number) IsZero() bool { return n.Sign() == 0 }

// IsInt reports whether the denominator is 1.
func (n Number) IsInt() bool { return n.rat().IsInt() }

// Int64 returns n as an int64 when n is an integer that fits.
func (n Number) Int64() (int64, bool) {
	if !n.IsInt() {
		return 0, false
	}
	num := n.rat().Num()
	if !num.IsInt64() {
		return 0, false
	}
	return num.Int64(), true
}

// Integer truncates n toward zero.
func (n Number) Integer() *big.Int {
	r := n.rat()
	return new(big.Int).Quo(r.Num(), r.Denom())
}

// Num returns a copy of the numerator (sign carried here).
func (n Number) Num() *big.Int { return new(big.Int).Set(n.rat().Num()) }

// Denom returns a copy of the (positive) denominator.
func (n Number) Denom() *big.Int { return new(big.Int).Set(n.rat().Denom()) }

// String renders integers plainly and fractions as "p/q".
func (n Number) String() string {
	r := n.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

// GoString keeps %#v output short in test failures.
func (n Number) GoString() string { return "number(" + n.String() + ")" }

// Sum adds all xs.
func Sum(xs ...Number) Number {
	out := Zero
	for _, x := range xs {
		out = out.Add(x)
	}
	return out
}

// LCMDenominators returns the least common multiple of the denominators of xs,
// or 1 for an empty input.
func LCMDenominators(xs []Number) *big.Int {
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, x := range xs {
		d := x.rat().Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}
	return lcm
}

// GCDNumerators returns the gcd of |numerator| over all xs (0 when all are zero).
func GCDNumerators(xs []Number) *big.Int {
	g := new(big.Int)
	for _, x := range xs {
		g.GCD(nil, nil, g, new(big.Int).Abs(x.rat().Num()))
	}
	return g
}
