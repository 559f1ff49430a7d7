// SPDX-License-Identifier: MIT

// Package chemeval is a small symbolic evaluator for introductory physics
// and chemistry: it rewrites unit and photon-energy expressions through a
// registry of declared functions, and balances chemical equations with
// exact rational arithmetic.
//
// Everything is organized under subpackages:
//
//	number/  exact rationals (math/big) with LCM/GCD helpers
//	matrix/  dense rational matrices: reordering, elimination, nullspace
//	matching/ row-to-diagonal assignment (augmenting paths, greedy passes)
//	expr/    expression tree, parser, bottom-up transforms
//	funcs/   declared functions, argument converters, dispatch registry
//	chem/    formulas, reactions, atom counting, balancing, display
//	config/  YAML settings and batch files
//
// Quick example:
//
//	r := chem.MustParseReaction("C3H8 + O2 -> CO2 + H2O")
//	x, _ := r.BalanceIntegers()   // [1, 5, 3, 4]
//	b, _ := r.Balanced(x)
//	fmt.Println(b)                // C₃H₈ + 5O₂ ⟶ 3CO₂ + 4H₂O
//
// The cmd/chemeval binary wraps all of this in a REPL.
//
//	go install github.com/katalvlaran/chemeval/cmd/chemeval@latest
package chemeval
