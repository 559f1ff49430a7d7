// SPDX-License-Identifier: MIT

package chem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMultiplicity indicates a coefficient or subscript that is not
	// a non-negative integer where atoms are counted, or a count that
	// overflows an int once groups are multiplied out.
	ErrInvalidMultiplicity = errors.New("chem: invalid multiplicity")

	// ErrTooManyAtoms indicates an atom list longer than MaxAtoms was
	// requested.
	ErrTooManyAtoms = errors.New("chem: too many atoms to expand")

	// ErrInconsistentElementSet indicates an atom outside the element universe
	// a coefficient map was requested for.
	ErrInconsistentElementSet = errors.New("chem: atom outside element universe")

	// ErrEmptyReaction indicates a reaction with no atoms or a missing side.
	ErrEmptyReaction = errors.New("chem: empty reaction")

	// ErrUnbalanceable indicates the solved coefficients are not all positive
	// or do not cancel every element.
	ErrUnbalanceable = errors.New("chem: reaction cannot be balanced")

	// ErrCoefficientCount indicates a coefficient vector whose length differs
	// from the number of terms.
	ErrCoefficientCount = errors.New("chem: coefficient count mismatch")

	// ErrSyntax is matched (errors.Is) by every *ParseError.
	ErrSyntax = errors.New("chem: syntax error")
)

// chemErrorf wraps err with an operation tag.
func chemErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ParseError reports malformed formula or reaction text.
type ParseError struct {
	Offset int    // byte offset into the input
	Msg    string // what was expected or found
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chem: syntax error at offset %d: %s", e.Offset, e.Msg)
}

// Is makes errors.Is(err, ErrSyntax) hold for parse errors.
func (e *ParseError) Is(target error) bool { return target == ErrSyntax }
