// SPDX-License-Identifier: MIT

// Package matching assigns matrix rows to diagonal positions.
//
// The problem: given, for every row, the set of column indices where that
// row is non-zero, choose one distinct row for each diagonal position
// 0..size-1 such that the chosen row is non-zero at that position. This is a
// bipartite matching between positions and rows; a complete assignment is
// exactly the precondition for Gaussian elimination without pivoting.
//
// Two solvers are provided:
//
//   - Assign: Kuhn's augmenting-path algorithm (depth-first search for an
//     alternating path, the unit-capacity special case of Ford–Fulkerson).
//     It finds a complete assignment whenever one exists and reports
//     ErrNoPerfectMatching otherwise.
//     Time O(P·E) for P positions and E non-zero entries.
//
//   - OrderSolver: a capped greedy scan. Each pass walks the positions
//     (alternating forward and backward), keeps a position's previous row if
//     still free, else takes the first free eligible row. It stops when every
//     position is filled or after maxPasses passes (ErrNotConverged). It can
//     miss assignments that Assign finds and is kept for reproducing results
//     computed with the older behavior.
//
// Both solvers are deterministic: rows are always scanned in ascending index
// order, with a row already sitting at a position tried first for it.
//
// The result is a permutation prefix: perm[pos] = row.
package matching
