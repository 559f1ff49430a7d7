// SPDX-License-Identifier: MIT

package funcs

import (
	"log"
	"sync"

	"github.com/katalvlaran/chemeval/expr"
)

// Option configures a Registry.
type Option func(*Registry)

// WithDecls registers decls, in order, at construction.
func WithDecls(decls ...*FunctionDecl) Option {
	return func(r *Registry) { r.decls = append(r.decls, decls...) }
}

// WithLogger traces every successful dispatch.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// Registry is an ordered list of declarations. Registration order is match
// priority. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	decls  []*FunctionDecl
	logger *log.Logger
}

// NewRegistry returns a registry configured by opts.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	for _, set := range opts {
		set(r)
	}
	return r
}

// Register appends decls after the existing ones.
func (r *Registry) Register(decls ...*FunctionDecl) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decls = append(r.decls, decls...)
}

// Decls returns a snapshot of the declarations in priority order.
func (r *Registry) Decls() []*FunctionDecl {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*FunctionDecl(nil), r.decls...)
}

// Call dispatches e to the first declaration that matches it and stops.
func (r *Registry) Call(e expr.Expr) (expr.Expr, bool) {
	for _, d := range r.Decls() {
		if out, ok := d.Call(e); ok {
			r.tracef("call: %s matched %s -> %s", d.Name(), e, out)
			return out, true
		}
	}
	return e, false
}

// Apply folds every declaration once over e: each declaration is tried
// against the current expression, and a success replaces it for the rest
// of the fold. Expressions matching nothing come back unchanged.
func (r *Registry) Apply(e expr.Expr) expr.Expr {
	out, _ := r.ApplyResult(e)
	return out
}

// ApplyResult is Apply plus whether any declaration matched.
func (r *Registry) ApplyResult(e expr.Expr) (expr.Expr, bool) {
	changed := false
	for _, d := range r.Decls() {
		out, ok := d.Call(e)
		if !ok {
			continue
		}
		r.tracef("apply: %s matched %s -> %s", d.Name(), e, out)
		e, changed = out, true
	}
	return e, changed
}

// ApplyDeep runs Apply once on every sub-expression, children first.
func (r *Registry) ApplyDeep(e expr.Expr) expr.Expr {
	decls := r.Decls()
	return expr.Transform(e, func(node expr.Expr) expr.Expr {
		for _, d := range decls {
			if out, ok := d.Call(node); ok {
				r.tracef("apply: %s matched %s -> %s", d.Name(), node, out)
				node = out
			}
		}
		return node
	})
}

func (r *Registry) tracef(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}

var builtin = NewRegistry(WithDecls(Builtins()...))

// Default returns the shared registry of built-in declarations.
func Default() *Registry { return builtin }

// Apply folds the built-in declarations over e once.
func Apply(e expr.Expr) expr.Expr { return builtin.Apply(e) }

// ApplyDeep is Default().ApplyDeep(e).
func ApplyDeep(e expr.Expr) expr.Expr { return builtin.ApplyDeep(e) }
