// SPDX-License-Identifier: MIT

// Package chem models chemical formulas and reactions and balances them
// with exact rational arithmetic.
//
// A formula is a tree of Node values:
//
//	*Chunk   coefficient · children · optional state    2H₂O(l)
//	*Parens  (children) with a subscript                (NO₃)₂
//	*Unit    element with a subscript                   H₂
//
// A Sequence is one side of a reaction; a Reaction pairs reactants with
// products. Multiplicities are rationals in the model but must resolve to
// non-negative integers whenever atoms are counted (ErrInvalidMultiplicity).
//
// Balancing builds the element × term coefficient matrix (reactant columns
// signed +1, product columns −1, rows in ascending element order), fixes
// the last term to 1 and solves the rest through package matrix:
//
//	r, _ := chem.ParseReaction("H2 + O2 -> H2O")
//	coeffs, _ := r.BalanceIntegers() // [2, 1, 2]
//	balanced, _ := r.Balanced(coeffs)
//	fmt.Println(balanced)            // 2H₂ + O₂ ⟶ 2H₂O
//
// IsBalanced and IsValid are deliberately weak: the first compares total
// atom counts, the second the number of distinct elements per side.
// IsElementBalanced is the per-element check.
package chem
