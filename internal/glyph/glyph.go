// internal/glyph/glyph.go
//
// Glyph is the fixed pixel pattern for one character.
// Responsibilities:
//   - Normalize raw multi-line patterns ("x" = on, anything else = off).
//   - Answer size and pixel queries over ragged rows.
//
// Rows may have unequal length; a missing cell is off.

package glyph

import "strings"

// Mark is the character that turns a pixel on in a raw pattern.
const Mark = 'x'

// Glyph holds a character and its boolean rows. Treat it as read-only.
type Glyph struct {
	Char rune
	Rows [][]bool
}

// Normalize converts a raw multi-line pattern into boolean rows.
// A single leading line break is dropped before splitting so patterns can be
// written as raw string literals that start on the next line.
func Normalize(char rune, src string) Glyph {
	src = strings.TrimPrefix(src, "\n")
	lines := strings.Split(src, "\n")
	return FromRows(char, lines)
}

// FromRows builds a glyph from one string per row.
func FromRows(char rune, lines []string) Glyph {
	rows := make([][]bool, len(lines))
	for i, line := range lines {
		row := make([]bool, 0, len(line))
		for _, c := range line {
			row = append(row, c == Mark)
		}
		rows[i] = row
	}
	return Glyph{Char: char, Rows: rows}
}

// Height is the number of rows.
func (g Glyph) Height() int { return len(g.Rows) }

// Width is the length of the longest row.
func (g Glyph) Width() int {
	w := 0
	for _, row := range g.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// On reports whether pixel (r, c) is on. Out-of-range pixels are off.
func (g Glyph) On(r, c int) bool {
	if r < 0 || r >= len(g.Rows) || c < 0 || c >= len(g.Rows[r]) {
		return false
	}
	return g.Rows[r][c]
}

// OnCount returns the number of lit pixels.
func (g Glyph) OnCount() int {
	n := 0
	for _, row := range g.Rows {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two glyphs have the same character and pixels.
// Trailing off pixels are significant since they contribute to Width.
func (g Glyph) Equal(o Glyph) bool {
	if g.Char != o.Char || len(g.Rows) != len(o.Rows) {
		return false
	}
	for i := range g.Rows {
		if len(g.Rows[i]) != len(o.Rows[i]) {
			return false
		}
		for j := range g.Rows[i] {
			if g.Rows[i][j] != o.Rows[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the glyph back into "x"/space rows, trailing spaces trimmed.
func (g Glyph) String() string {
	var b strings.Builder
	for i, row := range g.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := make([]byte, len(row))
		for j, on := range row {
			if on {
				line[j] = byte(Mark)
			} else {
				line[j] = ' '
			}
		}
		b.WriteString(strings.TrimRight(string(line), " "))
	}
	return b.String()
}
