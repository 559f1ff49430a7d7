// SPDX-License-Identifier: MIT

package funcs

import (
	"strings"

	"github.com/katalvlaran/chemeval/expr"
)

const (
	panicNilConv     = "funcs: nil conversion for parameter "
	panicDupParam    = "funcs: duplicate parameter "
	panicNilBody     = "funcs: nil body for "
	pathSeparator    = " => "
	keywordParamMark = "="
)

// Body computes the replacement for a matched call. ok=false (or a nil
// result) counts as no match.
type Body func(Args) (expr.Expr, bool)

// param is one declared argument.
type param struct {
	name    string
	keyword bool
	conv    Conv
}

// FunctionDecl is an immutable, pattern-matched function declaration.
type FunctionDecl struct {
	// Path holds one segment (name) or two (outer => inner).
	Path []string
	// PosArgs is the exact positional arity required.
	PosArgs int
	// KeyArgs lists keywords that must be present; extras are tolerated.
	KeyArgs []string

	params []param
	body   Body
}

// Builder assembles a FunctionDecl; see Define.
type Builder struct {
	path   []string
	params []param
	seen   map[string]bool
}

// Define starts a declaration for the given call path.
func Define(path ...string) *Builder {
	return &Builder{path: append([]string(nil), path...), seen: map[string]bool{}}
}

// Arg declares the next positional parameter.
// Panics on a nil conv or a repeated name.
func (b *Builder) Arg(name string, conv Conv) *Builder {
	return b.add(param{name: name, conv: conv})
}

// Keyword declares a required keyword parameter.
// Panics on a nil conv or a repeated name.
func (b *Builder) Keyword(name string, conv Conv) *Builder {
	return b.add(param{name: name, keyword: true, conv: conv})
}

func (b *Builder) add(p param) *Builder {
	if p.conv == nil {
		panic(panicNilConv + p.name)
	}
	if b.seen[p.name] {
		panic(panicDupParam + p.name)
	}
	b.seen[p.name] = true
	b.params = append(b.params, p)
	return b
}

// Body completes the declaration. Panics on a nil body.
func (b *Builder) Body(fn Body) *FunctionDecl {
	if fn == nil {
		panic(panicNilBody + strings.Join(b.path, pathSeparator))
	}
	d := &FunctionDecl{
		Path:   append([]string(nil), b.path...),
		params: append([]param(nil), b.params...),
		body:   fn,
	}
	for _, p := range d.params {
		if p.keyword {
			d.KeyArgs = append(d.KeyArgs, p.name)
		} else {
			d.PosArgs++
		}
	}
	return d
}

// Name renders the path, e.g. "energy => photon".
func (d *FunctionDecl) Name() string { return strings.Join(d.Path, pathSeparator) }

// Signature renders the path and parameters, e.g. "energy => photon(wavelength=)".
func (d *FunctionDecl) Signature() string {
	parts := make([]string, len(d.params))
	for i, p := range d.params {
		parts[i] = p.name
		if p.keyword {
			parts[i] += keywordParamMark
		}
	}
	return d.Name() + "(" + strings.Join(parts, ", ") + ")"
}

// Call dispatches d against source. On success it returns the body's
// result and true; otherwise source itself and false.
//
// One-segment path: source must be a call with the same name.
// Two-segment path: source must be a call named Path[0] whose first
// positional argument is a call named Path[1]; that inner call is the
// target. In both cases the target must carry exactly PosArgs positional
// arguments and every name in KeyArgs.
func (d *FunctionDecl) Call(source expr.Expr) (expr.Expr, bool) {
	target, ok := d.target(source)
	if !ok || !d.fits(target) {
		return source, false
	}
	args, ok := d.bind(target)
	if !ok {
		return source, false
	}
	out, ok := d.body(args)
	if !ok || out == nil {
		return source, false
	}
	return out, true
}

// target resolves the call the arity and keyword checks apply to.
func (d *FunctionDecl) target(source expr.Expr) (*expr.Call, bool) {
	root, ok := expr.AsCall(source)
	if !ok {
		return nil, false
	}
	switch len(d.Path) {
	case 1:
		return root, root.Name == d.Path[0]
	case 2:
		if root.Name != d.Path[0] || len(root.Pos) == 0 {
			return nil, false
		}
		inner, ok := expr.AsCall(root.Pos[0])
		if !ok || inner.Name != d.Path[1] {
			return nil, false
		}
		return inner, true
	default:
		return nil, false
	}
}

func (d *FunctionDecl) fits(c *expr.Call) bool {
	if len(c.Pos) != d.PosArgs {
		return false
	}
	for _, k := range d.KeyArgs {
		if _, ok := c.Keyword(k); !ok {
			return false
		}
	}
	return true
}

// bind converts arguments in declaration order; the first failure aborts.
func (d *FunctionDecl) bind(c *expr.Call) (Args, bool) {
	args := Args{vals: make(map[string]any, len(d.params))}
	next := 0
	for _, p := range d.params {
		var raw expr.Expr
		if p.keyword {
			raw, _ = c.Keyword(p.name)
		} else {
			raw = c.Pos[next]
			next++
		}
		v, ok := p.conv(raw)
		if !ok {
			return Args{}, false
		}
		args.vals[p.name] = v
	}
	return args, true
}
