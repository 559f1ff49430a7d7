// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/chemeval/chem"
	"github.com/katalvlaran/chemeval/config"
	"github.com/katalvlaran/chemeval/expr"
	"github.com/katalvlaran/chemeval/funcs"
	"github.com/katalvlaran/chemeval/matrix"
)

// session holds the evaluator state shared by every mode.
type session struct {
	cfg      config.Config
	registry *funcs.Registry
	opts     []matrix.Option
	logger   *log.Logger
}

// newSession wires cfg into the registry and matrix options. Tracing goes
// to logger only when cfg.Verbose is set.
func newSession(cfg config.Config, logger *log.Logger) *session {
	s := &session{cfg: cfg, logger: logger, opts: cfg.MatrixOptions()}

	regOpts := []funcs.Option{funcs.WithDecls(funcs.Builtins()...)}
	if cfg.Verbose {
		regOpts = append(regOpts, funcs.WithLogger(logger))
		s.opts = append(s.opts, matrix.WithLogger(logger))
	}
	s.registry = funcs.NewRegistry(regOpts...)
	return s
}

// result is the outcome of one evaluation.
type result struct {
	out string
	err error
}

// eval parses src as an expression and rewrites it.
func (s *session) eval(src string) result {
	e, err := expr.Parse(src)
	if err != nil {
		return result{err: err}
	}
	if s.cfg.Deep {
		return result{out: s.registry.ApplyDeep(e).String()}
	}
	return result{out: s.registry.Apply(e).String()}
}

// balance parses src as a reaction and renders it with integer
// coefficients.
func (s *session) balance(src string) result {
	r, err := chem.ParseReaction(src)
	if err != nil {
		return result{err: err}
	}
	coeffs, err := r.BalanceIntegers(s.opts...)
	if err != nil {
		return result{err: err}
	}
	b, err := r.Balanced(coeffs)
	if err != nil {
		return result{err: err}
	}
	return result{out: b.String()}
}

// atoms renders per-element counts of a formula in ascending element order.
func (s *session) atoms(src string) result {
	n, err := chem.ParseFormula(src)
	if err != nil {
		return result{err: err}
	}
	universe, err := chem.Universe(n)
	if err != nil {
		return result{err: err}
	}
	m, err := chem.CoefficientMap(n, universe)
	if err != nil {
		return result{err: err}
	}
	parts := make([]string, len(universe))
	for i, el := range universe {
		parts[i] = fmt.Sprintf("%s: %d", el, m[el])
	}
	return result{out: strings.Join(parts, ", ")}
}

// line handles one unprefixed input: an expression if it parses as one,
// otherwise a reaction.
func (s *session) line(src string) result {
	res := s.eval(src)
	if res.err == nil || !errors.Is(res.err, expr.ErrSyntax) {
		return res
	}
	if bal := s.balance(src); bal.err == nil || !errors.Is(bal.err, chem.ErrSyntax) {
		return bal
	}
	return res
}

// runBatch runs every job in order and returns the number of failures.
func (s *session) runBatch(b config.Batch, w io.Writer) int {
	failed := 0
	for i, job := range b.Jobs {
		var res result
		src := job.Eval
		if src != "" {
			res = s.eval(src)
		} else {
			src = job.Balance
			res = s.balance(src)
		}
		if res.err != nil {
			failed++
			s.logger.Printf("job %d (%s): %v", i, src, res.err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", src, res.out)
	}
	return failed
}

// printResult writes res and returns the exit code.
func (s *session) printResult(w io.Writer, res result) int {
	if res.err != nil {
		s.logger.Print(res.err)
		return 1
	}
	fmt.Fprintln(w, res.out)
	return 0
}
