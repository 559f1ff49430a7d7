// SPDX-License-Identifier: MIT

package chem

import "github.com/katalvlaran/chemeval/number"

// Transform rebuilds n bottom-up. f sees every node after its children were
// transformed; a child for which f returns false is dropped from its
// parent. The result is f applied to the rebuilt root.
func Transform(n Node, f func(Node) (Node, bool)) (Node, bool) {
	switch x := n.(type) {
	case *Chunk:
		out := *x
		out.Children = transformAll(x.Children, f)
		return f(&out)
	case *Parens:
		out := *x
		out.Children = transformAll(x.Children, f)
		return f(&out)
	case *Unit:
		out := *x
		return f(&out)
	}
	return f(n)
}

func transformAll(nodes []Node, f func(Node) (Node, bool)) []Node {
	out := make([]Node, 0, len(nodes))
	for _, c := range nodes {
		if t, keep := Transform(c, f); keep {
			out = append(out, t)
		}
	}
	return out
}

// Abbreviate replaces every parenthesized group, innermost first, by a unit
// named through env, so that a polyatomic group such as (NO₃) counts as one
// pseudo-element. Equal groups share a name. Expand reverses it.
func Abbreviate(n Node, env *Env) Node {
	out, _ := Transform(n, func(node Node) (Node, bool) {
		p, ok := node.(*Parens)
		if !ok || !flat(p.Children) {
			return node, true
		}
		group := &Parens{Children: p.Children, Subscript: number.One}
		return &Unit{Element: Element(env.Intern(group)), Subscript: p.Subscript}, true
	})
	return out
}

// flat reports whether nodes holds units only.
func flat(nodes []Node) bool {
	for _, c := range nodes {
		if _, ok := c.(*Unit); !ok {
			return false
		}
	}
	return true
}

// Expand substitutes every unit whose element names an env entry by that
// entry, repeated by the unit's subscript. Other nodes are kept.
func Expand(n Node, env *Env) Node {
	out, _ := Transform(n, func(node Node) (Node, bool) {
		u, ok := node.(*Unit)
		if !ok {
			return node, true
		}
		sub, found := env.Lookup(string(u.Element))
		if !found {
			return node, true
		}
		// entries may name earlier entries
		if p, isGroup := sub.(*Parens); isGroup {
			return Expand(&Parens{Children: p.Children, Subscript: p.Subscript.Mul(u.Subscript)}, env), true
		}
		return &Parens{Children: []Node{Expand(sub, env)}, Subscript: u.Subscript}, true
	})
	return out
}

// AbbreviateReaction applies Abbreviate to every term of r.
func AbbreviateReaction(r Reaction, env *Env) Reaction {
	return Reaction{Reactants: mapSeq(r.Reactants, env, Abbreviate), Products: mapSeq(r.Products, env, Abbreviate)}
}

// ExpandReaction applies Expand to every term of r.
func ExpandReaction(r Reaction, env *Env) Reaction {
	return Reaction{Reactants: mapSeq(r.Reactants, env, Expand), Products: mapSeq(r.Products, env, Expand)}
}

func mapSeq(s Sequence, env *Env, f func(Node, *Env) Node) Sequence {
	out := make(Sequence, len(s))
	for i, n := range s {
		out[i] = f(n, env)
	}
	return out
}
