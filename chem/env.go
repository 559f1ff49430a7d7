// SPDX-License-Identifier: MIT

package chem

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// NamePrefix starts every generated name.
const NamePrefix = "𝜶"

// Env hands out fresh names and stores the node each one stands for.
// Safe for concurrent use.
//
// Clones share the name counter, so names never collide across clones,
// but each clone owns its substitution table.
type Env struct {
	counter *atomic.Uint64

	mu     sync.RWMutex
	subs   map[string]Node
	byText map[string]string // rendered node -> name, for Intern
}

// NewEnv returns an empty environment with its counter at 0.
func NewEnv() *Env {
	return &Env{
		counter: new(atomic.Uint64),
		subs:    map[string]Node{},
		byText:  map[string]string{},
	}
}

// NewName returns 𝜶0, 𝜶1, ... in counter order.
func (e *Env) NewName() string {
	return fmt.Sprintf("%s%d", NamePrefix, e.counter.Add(1)-1)
}

// Insert stores n under a fresh name and returns the name.
func (e *Env) Insert(n Node) string {
	name := e.NewName()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs[name] = n
	e.byText[n.String()] = name
	return name
}

// Intern returns the name already bound to a node rendering like n, or
// inserts n under a fresh one.
func (e *Env) Intern(n Node) string {
	key := n.String()
	e.mu.RLock()
	name, ok := e.byText[key]
	e.mu.RUnlock()
	if ok {
		return name
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if name, ok = e.byText[key]; ok {
		return name
	}
	name = e.NewName()
	e.subs[name] = n
	e.byText[key] = name
	return name
}

// Lookup returns the node stored under name.
func (e *Env) Lookup(name string) (Node, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	n, ok := e.subs[name]
	return n, ok
}

// Len returns the number of stored substitutions.
func (e *Env) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}

// Clone returns an environment sharing e's counter with a copy of its
// substitutions.
func (e *Env) Clone() *Env {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c := &Env{
		counter: e.counter,
		subs:    make(map[string]Node, len(e.subs)),
		byText:  make(map[string]string, len(e.byText)),
	}
	for k, v := range e.subs {
		c.subs[k] = v
	}
	for k, v := range e.byText {
		c.byText[k] = v
	}
	return c
}
