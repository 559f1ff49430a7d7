// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for row reordering and solving.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

import (
	"log"

	"github.com/katalvlaran/chemeval/matching"
)

// Ordering selects the algorithm used by NonZeroDiagonal.
type Ordering int

const (
	// OrderingAugmenting uses augmenting-path bipartite matching: it finds a
	// valid order whenever one exists.
	OrderingAugmenting Ordering = iota

	// OrderingGreedy uses the alternating greedy scan with a pass
	// budget (see WithMaxPasses).
	OrderingGreedy
)

// String returns the config spelling of o.
func (o Ordering) String() string {
	switch o {
	case OrderingGreedy:
		return "greedy"
	default:
		return "augmenting"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrdering is the reordering strategy when none is given.
	DefaultOrdering = OrderingAugmenting

	// DefaultMaxPasses bounds the greedy strategy.
	DefaultMaxPasses = matching.DefaultMaxPasses

	// DefaultAugmented controls whether NonZeroDiagonal treats the last
	// column as a right-hand side that never takes a diagonal position.
	DefaultAugmented = false
)

const panicMaxPassesInvalid = "matrix: WithMaxPasses: passes must be > 0"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	ordering  Ordering
	maxPasses int
	augmented bool
	logger    *log.Logger // nil ⇒ silent
}

// WithGreedyOrdering selects OrderingGreedy.
func WithGreedyOrdering() Option {
	return func(o *Options) { o.ordering = OrderingGreedy }
}

// WithAugmentingOrdering selects OrderingAugmenting (the default).
func WithAugmentingOrdering() Option {
	return func(o *Options) { o.ordering = OrderingAugmenting }
}

// WithOrdering selects the strategy explicitly (config-driven callers).
func WithOrdering(ord Ordering) Option {
	return func(o *Options) { o.ordering = ord }
}

// WithMaxPasses sets the pass budget of the greedy strategy.
// Panics when passes <= 0.
func WithMaxPasses(passes int) Option {
	if passes <= 0 {
		panic(panicMaxPassesInvalid)
	}
	return func(o *Options) { o.maxPasses = passes }
}

// WithAugmented marks the last column as a right-hand side for reordering.
func WithAugmented() Option {
	return func(o *Options) { o.augmented = true }
}

// WithLogger enables step tracing (reorder permutation, eliminations).
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts on top of the defaults; exposed for inspection.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Ordering returns the resolved strategy.
func (o Options) Ordering() Ordering { return o.ordering }

// MaxPasses returns the resolved greedy pass budget.
func (o Options) MaxPasses() int { return o.maxPasses }

// Augmented reports whether the last column is treated as a right-hand side.
func (o Options) Augmented() bool { return o.augmented }

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		ordering:  DefaultOrdering,
		maxPasses: DefaultMaxPasses,
		augmented: DefaultAugmented,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// tracef logs through the configured logger, if any.
func (o Options) tracef(format string, args ...any) {
	if o.logger != nil {
		o.logger.Printf(format, args...)
	}
}
