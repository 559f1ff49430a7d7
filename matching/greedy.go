// SPDX-License-Identifier: MIT

package matching

import "fmt"

// DefaultMaxPasses is the pass budget of OrderSolver when none is configured.
const DefaultMaxPasses = 100

// OrderSolver runs the greedy alternating scan described in the package doc.
// perm[pos] = row on success; ErrNotConverged once maxPasses passes leave a
// position empty.
func OrderSolver(valid [][]int, size, maxPasses int) ([]int, error) {
	if maxPasses <= 0 {
		return nil, ErrInvalidPasses
	}
	if size < 0 {
		size = 0
	}
	if size > len(valid) {
		return nil, fmt.Errorf("OrderSolver(size=%d, rows=%d): %w", size, len(valid), ErrTooFewRows)
	}

	cand := candidates(valid, size)
	last := make([]int, size)
	for i := range last {
		last[i] = unmatched
	}

	backward := false
	for pass := 1; pass <= maxPasses; pass++ {
		last = greedyPass(cand, last, len(valid), backward)
		if complete(last) {
			return last, nil
		}
		backward = !backward
	}

	return nil, fmt.Errorf("OrderSolver: %d passes: %w", maxPasses, ErrNotConverged)
}

// greedyPass performs one scan over the positions in the given direction.
func greedyPass(cand [][]int, last []int, rows int, backward bool) []int {
	used := make([]bool, rows)
	current := make([]int, len(last))
	for i := range current {
		current[i] = unmatched
	}

	visit := func(pos int) {
		if prev := last[pos]; prev != unmatched && !used[prev] {
			used[prev] = true
			current[pos] = prev
			return
		}
		for _, row := range cand[pos] {
			if !used[row] {
				used[row] = true
				current[pos] = row
				return
			}
		}
	}

	if backward {
		for pos := len(last) - 1; pos >= 0; pos-- {
			visit(pos)
		}
	} else {
		for pos := 0; pos < len(last); pos++ {
			visit(pos)
		}
	}

	return current
}

func complete(perm []int) bool {
	for _, row := range perm {
		if row == unmatched {
			return false
		}
	}
	return true
}

// Complete returns perm extended with every row it does not mention, in
// ascending order, yielding a full row permutation of length rows.
func Complete(perm []int, rows int) []int {
	placed := make([]bool, rows)
	out := make([]int, 0, rows)
	for _, row := range perm {
		placed[row] = true
		out = append(out, row)
	}
	for row := 0; row < rows; row++ {
		if !placed[row] {
			out = append(out, row)
		}
	}
	return out
}
