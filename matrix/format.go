// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"
	"unicode/utf8"
)

// ---------- Formatting literals ----------
const (
	_fmtSep      = ", "
	_fmtTopLeft  = "┌"
	_fmtTopRight = "┐"
	_fmtBotLeft  = "└"
	_fmtBotRight = "┘"
	_fmtSide     = "│"
)

// String renders m with box-drawing brackets and right-aligned columns:
//
//	┌        ┐
//	│ 2  0 -2│
//	│ 0  2 -1│
//	└        ┘
//
// Intended for diagnostics; the layout is not part of any contract.
func (m *Matrix) String() string {
	if len(m.rows) == 0 {
		return _fmtTopLeft + _fmtTopRight + "\n" + _fmtBotLeft + _fmtBotRight
	}

	widths := make([]int, m.cols)
	cells := make([][]string, len(m.rows))
	for i, r := range m.rows {
		cells[i] = make([]string, m.cols)
		for j, v := range r {
			s := v.String()
			cells[i][j] = s
			widths[j] = max(widths[j], utf8.RuneCountInString(s))
		}
	}

	lines := make([]string, 0, len(m.rows))
	inner := 0
	for i := range cells {
		var b strings.Builder
		for j, s := range cells[i] {
			b.WriteString(" ")
			b.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(s)))
			b.WriteString(s)
		}
		line := b.String()
		inner = utf8.RuneCountInString(line)
		lines = append(lines, _fmtSide+line+_fmtSide)
	}

	pad := strings.Repeat(" ", inner)
	out := []string{_fmtTopLeft + pad + _fmtTopRight}
	out = append(out, lines...)
	out = append(out, _fmtBotLeft+pad+_fmtBotRight)
	return strings.Join(out, "\n")
}

// GoString renders m as nested literal rows, e.g. [[1, 2], [3, 4]].
func (m *Matrix) GoString() string {
	parts := make([]string, len(m.rows))
	for i, r := range m.rows {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, _fmtSep) + "]"
}
