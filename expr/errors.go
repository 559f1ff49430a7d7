// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched (errors.Is) by every *ParseError.
var ErrSyntax = errors.New("expr: syntax error")

// ParseError reports malformed expression text.
type ParseError struct {
	Offset int    // byte offset into the input
	Msg    string // what was expected or found
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: syntax error at offset %d: %s", e.Offset, e.Msg)
}

// Is makes errors.Is(err, ErrSyntax) hold for parse errors.
func (e *ParseError) Is(target error) bool { return target == ErrSyntax }
