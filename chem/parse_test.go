// SPDX-License-Identifier: MIT

package chem_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemeval/chem"
)

func TestParseFormula_Structure(t *testing.T) {
	n, err := chem.ParseFormula("3Ca(OH)2(aq)")
	require.NoError(t, err)

	c, ok := n.(*chem.Chunk)
	require.True(t, ok)
	assert.Equal(t, "3", c.Coefficient.String())
	require.NotNil(t, c.State)
	assert.Equal(t, chem.Aqueous, *c.State)
	require.Len(t, c.Children, 2)

	ca, ok := c.Children[0].(*chem.Unit)
	require.True(t, ok)
	assert.Equal(t, chem.Element("Ca"), ca.Element)
	assert.Equal(t, "1", ca.Subscript.String())

	oh, ok := c.Children[1].(*chem.Parens)
	require.True(t, ok)
	assert.Equal(t, "2", oh.Subscript.String())
	assert.Len(t, oh.Children, 2)
}

func TestParseFormula_Accepts(t *testing.T) {
	cases := map[string]string{
		"H2O":          "H₂O",
		"2 H2O (l)":    "2H₂O(l)",
		"H₂O":          "H₂O",
		"K4[Fe(CN)6]":  "K₄(Fe(CN)₆)",
		"NaCl(s)":      "NaCl(s)",
		"CO2(g)":       "CO₂(g)",
		"1/2O2":        "1/2O₂",
		"C12H22O11":    "C₁₂H₂₂O₁₁",
		"Mg(OH)2 (aq)": "Mg(OH)₂(aq)",
	}
	for in, want := range cases {
		n, err := chem.ParseFormula(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, n.String(), in)
	}
}

func TestParseFormula_Errors(t *testing.T) {
	for _, src := range []string{
		"",
		"h2o",
		"2",
		"(H2O",
		"[H2O)",
		"H2O(x)",
		"H2O)",
		"3/0H2",
		"H2 O2",
		"()",
	} {
		_, err := chem.ParseFormula(src)
		require.Error(t, err, src)
		assert.ErrorIs(t, err, chem.ErrSyntax, src)

		var pe *chem.ParseError
		assert.True(t, errors.As(err, &pe), src)
	}
}

func TestParseFormula_Depth(t *testing.T) {
	nested := func(d int) string {
		return strings.Repeat("(", d) + "H2" + strings.Repeat(")", d)
	}

	n, err := chem.ParseFormula(nested(chem.MaxDepth))
	require.NoError(t, err)
	count, err := chem.Count(n, "H")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = chem.ParseFormula(nested(chem.MaxDepth + 1))
	require.ErrorIs(t, err, chem.ErrSyntax)
	var pe *chem.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Msg, "nested deeper")
}

func TestParseReaction(t *testing.T) {
	for _, src := range []string{
		"H2 + O2 -> H2O",
		"H2 + O2 → H2O",
		"H2 + O2 ⟶ H2O",
		"H2+O2=H2O",
	} {
		r, err := chem.ParseReaction(src)
		require.NoError(t, err, src)
		assert.Len(t, r.Reactants, 2, src)
		assert.Len(t, r.Products, 1, src)
		assert.Equal(t, "H₂ + O₂ ⟶ H₂O", r.String(), src)
	}

	for _, src := range []string{
		"H2 + O2",
		"H2 + -> H2O",
		"-> H2O",
		"H2 -> H2O ->",
		"H2 -> H2O +",
	} {
		_, err := chem.ParseReaction(src)
		assert.ErrorIs(t, err, chem.ErrSyntax, src)
	}
}

// TestRoundTrip parses the rendered form of each formula back and compares
// atoms.
func TestRoundTrip(t *testing.T) {
	for _, src := range []string{
		"H2O",
		"(H2O)3",
		"2Ca3(PO4)2(s)",
		"Fe2(SO4)3",
		"K4[Fe(CN)6]",
		"1/2O2",
		"CH3(CH2)10CH3",
	} {
		n := chem.MustParseFormula(src)
		back, err := chem.ParseFormula(n.String())
		require.NoError(t, err, "%s -> %s", src, n)
		assertSameAtoms(t, n, back)
	}

	r := chem.MustParseReaction("2H2(g) + O2(g) -> 2H2O(l)")
	back, err := chem.ParseReaction(r.String())
	require.NoError(t, err)
	assert.Equal(t, r.String(), back.String())
}

func assertSameAtoms(t *testing.T, want, got chem.Node) {
	t.Helper()
	wa, err := chem.Atoms(want)
	if err != nil {
		// fractional coefficients: compare the formulas' units instead
		wa, err = chem.Sequence{want}.Units().Atoms()
		require.NoError(t, err)
		ga, err := chem.Sequence{got}.Units().Atoms()
		require.NoError(t, err)
		assert.ElementsMatch(t, wa, ga)
		return
	}
	ga, err := chem.Atoms(got)
	require.NoError(t, err)
	assert.ElementsMatch(t, wa, ga)
}
