// SPDX-License-Identifier: MIT

package chem

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/chemeval/number"
)

// MaxDepth bounds how deeply groups may nest.
const MaxDepth = 64

// Arrows accepted by ParseReaction, longest first.
var arrows = []string{"⟶", "→", "->", "="}

// ParseFormula reads one term.
//
// Grammar:
//
//	chunk   := [coefficient] group+ [state]
//	group   := element [count] | "(" group+ ")" [count] | "[" group+ "]" [count]
//	element := upper lower*
//	count   := digits ["/" digits]       (ASCII or Unicode subscript digits)
//	state   := "(" ("aq" | "s" | "l" | "g") ")"
//	coefficient := digits ["/" digits]
//
// Whitespace may separate the coefficient, the formula and the state.
// Groups nested deeper than MaxDepth are a syntax error.
func ParseFormula(text string) (Node, error) {
	p := &parser{src: text}
	n, err := p.chunk()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.atEnd() {
		return nil, p.errorf("unexpected %q", p.peek())
	}
	return n, nil
}

// ParseReaction reads "seq arrow seq" with seq := chunk ("+" chunk)* and
// arrow one of ⟶, →, -> or =.
func ParseReaction(text string) (Reaction, error) {
	p := &parser{src: text}
	lhs, err := p.sequence()
	if err != nil {
		return Reaction{}, err
	}
	p.skipSpace()
	if !p.arrow() {
		if p.atEnd() {
			return Reaction{}, p.errorf("expected arrow, found end of input")
		}
		return Reaction{}, p.errorf("expected arrow, found %q", p.peek())
	}
	rhs, err := p.sequence()
	if err != nil {
		return Reaction{}, err
	}
	p.skipSpace()
	if !p.atEnd() {
		return Reaction{}, p.errorf("unexpected %q", p.peek())
	}
	return Reaction{Reactants: lhs, Products: rhs}, nil
}

// MustParseReaction is ParseReaction for literals known to be valid.
func MustParseReaction(text string) Reaction {
	r, err := ParseReaction(text)
	if err != nil {
		panic(err)
	}
	return r
}

// MustParseFormula is ParseFormula for literals known to be valid.
func MustParseFormula(text string) Node {
	n, err := ParseFormula(text)
	if err != nil {
		panic(err)
	}
	return n
}

type parser struct {
	src   string
	pos   int
	depth int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *parser) advance() rune {
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size
	return r
}

func (p *parser) skipSpace() {
	for !p.atEnd() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) arrow() bool {
	for _, a := range arrows {
		if strings.HasPrefix(p.src[p.pos:], a) {
			p.pos += len(a)
			return true
		}
	}
	return false
}

func (p *parser) sequence() (Sequence, error) {
	var seq Sequence
	for {
		n, err := p.chunk()
		if err != nil {
			return nil, err
		}
		seq = append(seq, n)
		p.skipSpace()
		if p.atEnd() || p.peek() != '+' {
			return seq, nil
		}
		p.advance()
	}
}

func (p *parser) chunk() (Node, error) {
	p.skipSpace()
	coef := number.One
	if !p.atEnd() && isASCIIDigit(p.peek()) {
		var err error
		if coef, err = p.count(isASCIIDigit, asciiValue); err != nil {
			return nil, err
		}
		p.skipSpace()
	}

	groups, err := p.groups()
	if err != nil {
		return nil, err
	}
	c := &Chunk{Coefficient: coef, Children: groups}

	mark := p.pos
	p.skipSpace()
	if s, ok := p.state(); ok {
		c.State = &s
	} else {
		p.pos = mark
	}
	return c, nil
}

// groups reads group+ and stops before anything that cannot start a group.
func (p *parser) groups() ([]Node, error) {
	var out []Node
	for !p.atEnd() {
		r := p.peek()
		if (r == '(' || r == '[') && !p.atState() {
			g, err := p.paren(r)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
			continue
		}
		if !unicode.IsUpper(r) {
			break
		}
		u, err := p.unit()
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if len(out) == 0 {
		if p.atEnd() {
			return nil, p.errorf("expected element, found end of input")
		}
		return nil, p.errorf("expected element, found %q", p.peek())
	}
	return out, nil
}

func (p *parser) unit() (Node, error) {
	start := p.pos
	p.advance()
	for !p.atEnd() && unicode.IsLower(p.peek()) {
		p.advance()
	}
	u := &Unit{Element: Element(p.src[start:p.pos]), Subscript: number.One}
	if sub, ok, err := p.subscript(); err != nil {
		return nil, err
	} else if ok {
		u.Subscript = sub
	}
	return u, nil
}

func (p *parser) paren(open rune) (Node, error) {
	if p.depth++; p.depth > MaxDepth {
		return nil, p.errorf("groups nested deeper than %d", MaxDepth)
	}
	defer func() { p.depth-- }()

	closer := ')'
	if open == '[' {
		closer = ']'
	}
	p.advance()
	children, err := p.groups()
	if err != nil {
		return nil, err
	}
	if p.atEnd() || p.peek() != closer {
		return nil, p.errorf("expected %q", closer)
	}
	p.advance()

	g := &Parens{Children: children, Subscript: number.One}
	if sub, ok, err := p.subscript(); err != nil {
		return nil, err
	} else if ok {
		g.Subscript = sub
	}
	return g, nil
}

// subscript reads an optional count in ASCII or subscript digits.
func (p *parser) subscript() (number.Number, bool, error) {
	if p.atEnd() {
		return number.Zero, false, nil
	}
	switch r := p.peek(); {
	case isASCIIDigit(r):
		n, err := p.count(isASCIIDigit, asciiValue)
		return n, err == nil, err
	case isSubscriptDigit(r):
		n, err := p.count(isSubscriptDigit, subscriptValue)
		return n, err == nil, err
	}
	return number.Zero, false, nil
}

// count reads digits ["/" digits] in one digit family.
func (p *parser) count(isDigit func(rune) bool, value func(rune) rune) (number.Number, error) {
	start := p.pos
	var sb strings.Builder
	for !p.atEnd() && isDigit(p.peek()) {
		sb.WriteRune(value(p.advance()))
	}
	if !p.atEnd() && p.peek() == '/' {
		mark := p.pos
		p.advance()
		if p.atEnd() || !isDigit(p.peek()) {
			p.pos = mark
		} else {
			sb.WriteByte('/')
			for !p.atEnd() && isDigit(p.peek()) {
				sb.WriteRune(value(p.advance()))
			}
		}
	}
	n, err := number.Parse(sb.String())
	if err != nil {
		return number.Zero, &ParseError{Offset: start, Msg: err.Error()}
	}
	return n, nil
}

// atState reports whether a state annotation starts here.
func (p *parser) atState() bool {
	mark := p.pos
	_, ok := p.state()
	p.pos = mark
	return ok
}

func (p *parser) state() (State, bool) {
	rest := p.src[p.pos:]
	if !strings.HasPrefix(rest, "(") {
		return 0, false
	}
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return 0, false
	}
	s, ok := ParseState(rest[1:end])
	if ok {
		p.pos += end + 1
	}
	return s, ok
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func asciiValue(r rune) rune { return r }

func isSubscriptDigit(r rune) bool { return r >= '₀' && r <= '₉' }

func subscriptValue(r rune) rune { return '0' + (r - '₀') }
