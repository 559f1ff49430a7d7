// SPDX-License-Identifier: MIT

package matching

import "fmt"

const unmatched = -1

// candidates builds, for each position, the rows eligible for it.
// Row pos (if eligible) is listed first so an already valid diagonal is kept;
// the remaining rows follow in ascending order.
func candidates(valid [][]int, size int) [][]int {
	cand := make([][]int, size)
	var row, pos int
	for row = 0; row < len(valid); row++ {
		for _, pos = range valid[row] {
			if pos < 0 || pos >= size {
				continue // columns past the diagonal play no role
			}
			if row == pos {
				cand[pos] = append([]int{row}, cand[pos]...)
				continue
			}
			cand[pos] = append(cand[pos], row)
		}
	}
	return cand
}

// Assign computes a complete assignment of rows to positions 0..size-1.
//
// valid[row] lists the positions row may occupy (its non-zero columns).
// The returned perm has length size and perm[pos] is the row placed at pos.
//
// Steps:
//  1. Validate size against the row count (ErrTooFewRows).
//  2. Build the per-position candidate lists.
//  3. For each position in ascending order, search an augmenting path with
//     DFS: try every candidate row; a free row is taken directly, an owned
//     row is taken if its owner can be re-seated elsewhere.
//  4. If any search fails, no complete assignment exists.
//
// Complexity:
//
//	Time:   O(P·E), P = size, E = total entries in valid.
//	Memory: O(P + R) for ownership and per-search visited marks.
func Assign(valid [][]int, size int) ([]int, error) {
	if size < 0 {
		size = 0
	}
	if size > len(valid) {
		return nil, fmt.Errorf("Assign(size=%d, rows=%d): %w", size, len(valid), ErrTooFewRows)
	}

	cand := candidates(valid, size)
	owner := make([]int, len(valid)) // owner[row] = position holding row
	for i := range owner {
		owner[i] = unmatched
	}
	perm := make([]int, size)
	for i := range perm {
		perm[i] = unmatched
	}

	var seen []bool
	var augment func(pos int) bool
	augment = func(pos int) bool {
		for _, row := range cand[pos] {
			if seen[row] {
				continue
			}
			seen[row] = true
			if owner[row] == unmatched || augment(owner[row]) {
				owner[row] = pos
				perm[pos] = row
				return true
			}
		}
		return false
	}

	for pos := 0; pos < size; pos++ {
		seen = make([]bool, len(valid)) // fresh marks per augmenting search
		if !augment(pos) {
			return nil, fmt.Errorf("Assign: position %d: %w", pos, ErrNoPerfectMatching)
		}
	}

	return perm, nil
}
