// SPDX-License-Identifier: MIT

package matching

import "errors"

var (
	// ErrNoPerfectMatching is returned by Assign when some position cannot be
	// covered by any distinct row.
	ErrNoPerfectMatching = errors.New("matching: no complete row assignment exists")

	// ErrNotConverged is returned by OrderSolver after maxPasses passes
	// without filling every position.
	ErrNotConverged = errors.New("matching: greedy ordering did not converge")

	// ErrTooFewRows indicates size exceeds the number of rows, so no
	// assignment can be complete.
	ErrTooFewRows = errors.New("matching: fewer rows than positions")

	// ErrInvalidPasses indicates a non-positive pass budget.
	ErrInvalidPasses = errors.New("matching: maxPasses must be > 0")
)
