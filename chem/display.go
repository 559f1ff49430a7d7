// SPDX-License-Identifier: MIT

package chem

import (
	"strings"

	"github.com/katalvlaran/chemeval/number"
)

// Arrow separates the sides of a rendered reaction.
const Arrow = "⟶"

var subscriptDigits = strings.NewReplacer(
	"0", "₀", "1", "₁", "2", "₂", "3", "₃", "4", "₄",
	"5", "₅", "6", "₆", "7", "₇", "8", "₈", "9", "₉", "-", "₋",
)

// subscript renders x with Unicode subscript digits; 1 renders empty.
func subscript(x number.Number) string {
	if x.Equal(number.One) {
		return ""
	}
	return subscriptDigits.Replace(x.String())
}

func (u *Unit) String() string { return string(u.Element) + subscript(u.Subscript) }

func (p *Parens) String() string {
	return "(" + renderAll(p.Children) + ")" + subscript(p.Subscript)
}

func (c *Chunk) String() string {
	var sb strings.Builder
	if !c.Coefficient.Equal(number.One) {
		sb.WriteString(c.Coefficient.String())
	}
	sb.WriteString(renderAll(c.Children))
	if c.State != nil {
		sb.WriteString("(" + c.State.String() + ")")
	}
	return sb.String()
}

func renderAll(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.String())
	}
	return sb.String()
}

// String joins the terms with " + ".
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = n.String()
	}
	return strings.Join(parts, " + ")
}

// String renders "lhs ⟶ rhs".
func (r Reaction) String() string {
	return r.Reactants.String() + " " + Arrow + " " + r.Products.String()
}
