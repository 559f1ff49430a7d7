// SPDX-License-Identifier: MIT

package funcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemeval/expr"
	"github.com/katalvlaran/chemeval/funcs"
)

func TestBuiltins_Order(t *testing.T) {
	var names []string
	for _, d := range funcs.Builtins() {
		names = append(names, d.Signature())
	}
	assert.Equal(t, []string{
		"mole(value)",
		"GHz(value)",
		"MHz(value)",
		"nm(value)",
		"energy => photon(wavelength=)",
		"energy => photon(frequency=)",
		"frequency(wavelength=)",
		"wavelength(frequency=)",
		"period(frequency=)",
		"energy(from=, to=)",
	}, names)
}

func TestBuiltins_Apply(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"mole(2)", "2 * N_A"},
		{"mole(x * y)", "(x * y) * N_A"},
		{"GHz(3/2)", "3/2 * GHz"},
		{"MHz(100)", "100 * MHz"},
		{"nm(250)", "250 * nm"},
		{"energy(photon(wavelength=nm(325)))", "(c * h) / nm(325)"},
		{"energy(photon(frequency=GHz(2)))", "h * GHz(2)"},
		{"frequency(wavelength=lambda)", "c / lambda"},
		{"wavelength(frequency=nu)", "c / nu"},
		{"period(frequency=nu)", "1 / nu"},
		// unit conversions need literals
		{"GHz(x)", "GHz(x)"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, funcs.Apply(expr.MustParse(tc.in)).String())
		})
	}
}

func TestBuiltins_ApplyDeep(t *testing.T) {
	out := funcs.ApplyDeep(expr.MustParse("energy(photon(wavelength=nm(325)))"))
	assert.Equal(t, "(c * h) / (325 * nm)", out.String())
}

func TestBuiltins_Rydberg(t *testing.T) {
	out, changed := funcs.Default().ApplyResult(expr.MustParse("energy(from=electron(n=3), to=electron(n=2))"))
	require.True(t, changed)
	// 1/9 − 1/4
	assert.Equal(t, "R_H * -5/36", out.String())

	for _, src := range []string{
		"energy(from=electron(n=0), to=electron(n=2))", // 1/0
		"energy(from=electron(n=x), to=electron(n=2))", // not a literal
		"energy(from=3, to=electron(n=2))",              // not an electron level
		"energy(from=electron(k=1), to=electron(n=2))",  // missing keyword
	} {
		_, changed := funcs.Default().ApplyResult(expr.MustParse(src))
		assert.False(t, changed, src)
	}
}
