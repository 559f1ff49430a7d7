// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/chemeval/number"
)

// MaxDepth bounds how deeply parentheses and calls may nest.
const MaxDepth = 256

// Parse reads one expression.
//
// Grammar:
//
//	expr    := factor (("*" | "·" | "/") factor)*
//	factor  := number | ident | ident "(" [arg ("," arg)*] ")" | "(" expr ")"
//	arg     := ident "=" expr | expr
//	number  := ["-"] digits ("." digits | "/" digits)?
//	ident   := (letter | "_") (letter | digit | "_")*
//
// A run of "*" builds one Product; "/" is left-associative. A "/" glued to
// digits on both sides belongs to a rational literal, so "1/2" is a Num and
// "1 / 2" is a Fraction. Keyword names must be unique within a call.
// Nesting deeper than MaxDepth is a syntax error.
func Parse(text string) (Expr, error) {
	p := &parser{src: text}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.atEnd() {
		return nil, p.errorf("unexpected %q", p.peek())
	}
	return e, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(text string) Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
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

// accept consumes r after optional whitespace.
func (p *parser) accept(r rune) bool {
	p.skipSpace()
	if !p.atEnd() && p.peek() == r {
		p.advance()
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expr() (Expr, error) {
	if p.depth++; p.depth > MaxDepth {
		return nil, p.errorf("nesting deeper than %d", MaxDepth)
	}
	defer func() { p.depth-- }()

	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	var terms []Expr
	for {
		p.skipSpace()
		if p.atEnd() {
			break
		}
		switch p.peek() {
		case '*', '·':
			p.advance()
			right, err := p.factor()
			if err != nil {
				return nil, err
			}
			if terms == nil {
				terms = []Expr{left}
			}
			terms = append(terms, right)
			continue
		case '/':
			p.advance()
			right, err := p.factor()
			if err != nil {
				return nil, err
			}
			left = Ratio(collect(left, terms), right)
			terms = nil
			continue
		}
		break
	}
	return collect(left, terms), nil
}

// collect closes a pending run of products.
func collect(left Expr, terms []Expr) Expr {
	if terms == nil {
		return left
	}
	return &Product{Terms: terms}
}

func (p *parser) factor() (Expr, error) {
	p.skipSpace()
	if p.atEnd() {
		return nil, p.errorf("unexpected end of input")
	}
	r := p.peek()
	switch {
	case r == '(':
		p.advance()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.accept(')') {
			return nil, p.errorf("expected ')'")
		}
		return e, nil
	case r == '-' || isDigit(r):
		return p.number()
	case isIdentStart(r):
		name := p.ident()
		if !p.accept('(') {
			return Constant(name), nil
		}
		return p.call(name)
	}
	return nil, p.errorf("unexpected %q", r)
}

func (p *parser) number() (Expr, error) {
	start := p.pos
	if p.peek() == '-' {
		p.advance()
	}
	if !p.digits() {
		return nil, p.errorf("expected digits")
	}
	decimal := !p.atEnd() && p.peek() == '.'
	if decimal {
		p.advance()
		if !p.digits() {
			return nil, p.errorf("expected digits after '.'")
		}
	}
	if !decimal && p.pos+1 < len(p.src) && p.src[p.pos] == '/' && isDigit(rune(p.src[p.pos+1])) {
		p.advance()
		p.digits()
	}
	n, err := number.Parse(p.src[start:p.pos])
	if err != nil {
		// "3/0" and friends
		return nil, &ParseError{Offset: start, Msg: err.Error()}
	}
	return Lit(n), nil
}

func (p *parser) digits() bool {
	start := p.pos
	for !p.atEnd() && isDigit(p.peek()) {
		p.advance()
	}
	return p.pos > start
}

func (p *parser) ident() string {
	start := p.pos
	for !p.atEnd() && isIdentPart(p.peek()) {
		p.advance()
	}
	return p.src[start:p.pos]
}

// call parses the argument list after "name(".
func (p *parser) call(name string) (Expr, error) {
	c := &Call{Name: name, Key: map[string]Expr{}}
	if p.accept(')') {
		return c, nil
	}
	for {
		if err := p.arg(c); err != nil {
			return nil, err
		}
		if p.accept(',') {
			continue
		}
		if p.accept(')') {
			return c, nil
		}
		return nil, p.errorf("expected ',' or ')' in call to %s", name)
	}
}

func (p *parser) arg(c *Call) error {
	p.skipSpace()
	mark := p.pos
	if !p.atEnd() && isIdentStart(p.peek()) {
		key := p.ident()
		// "=" but not "=>"
		if p.accept('=') && (p.atEnd() || p.peek() != '>') {
			if _, dup := c.Key[key]; dup {
				return &ParseError{Offset: mark, Msg: fmt.Sprintf("duplicate keyword %q", key)}
			}
			v, err := p.expr()
			if err != nil {
				return err
			}
			c.Key[key] = v
			return nil
		}
		p.pos = mark
	}
	v, err := p.expr()
	if err != nil {
		return err
	}
	c.Pos = append(c.Pos, v)
	return nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentPart(r rune) bool { return isIdentStart(r) || unicode.IsDigit(r) }
