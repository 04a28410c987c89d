// internal/layout/layout.go
//
// Word layout planner + grid activation index.
// Responsibilities:
//   - Stamp each letter's glyph onto a rows×cols grid, left to right.
//   - Fail early for unsupported characters and words that do not fit.
//   - Answer O(1) "which letter owns (row, col)?" queries for click validation.
//
// Placement:
//   - Letters start at (TopMargin, LeftMargin) and are separated by Gap blank columns.
//   - Only lit pixels are stamped; unlit pixels never overwrite a cell.
//   - The output grid always has the full requested dimensions.

package layout

import (
	"github.com/robalobadob/element-decoder/internal/glyph"
)

// Default placement parameters, tuned for the 10×18 periodic-table grid:
// row 3 is the first fully populated period.
const (
	DefaultTopMargin  = 3
	DefaultLeftMargin = 1
	DefaultGap        = 1
)

// Planner lays words out with fixed margins and spacing.
type Planner struct {
	Catalog    *glyph.Catalog
	TopMargin  int
	LeftMargin int
	Gap        int
}

// DefaultPlanner uses the built-in catalog and default margins.
func DefaultPlanner() Planner {
	return Planner{
		Catalog:    glyph.Default(),
		TopMargin:  DefaultTopMargin,
		LeftMargin: DefaultLeftMargin,
		Gap:        DefaultGap,
	}
}

// Build lays out word with the default planner.
func Build(word string, gridRows, gridCols int) (*WordLayout, error) {
	return DefaultPlanner().Build(word, gridRows, gridCols)
}

// Pos is a grid coordinate.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement records where one letter of the word landed.
type Placement struct {
	Index  int   `json:"index"`
	Char   rune  `json:"char"`
	Origin Pos   `json:"origin"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Cells  []Pos `json:"cells"` // lit cells, row-major
}

// Activation is the answer to a grid query.
type Activation struct {
	Active      bool
	LetterIndex int // meaningful only when Active
}

// WordLayout is the composed grid for one word. Immutable once built.
type WordLayout struct {
	Word       string
	Rows, Cols int
	Placements []Placement

	// cells[row*Cols+col] is the owning letter index, or -1.
	cells  []int
	active int
}

// Build lays word out on a gridRows×gridCols grid.
//
// Errors (all *Error):
//   - ErrEmptyWord if word has no characters.
//   - ErrUnsupportedCharacter if any character lacks a glyph (checked before stamping).
//   - ErrWordTooLarge if a glyph runs past the bottom or right edge, or the
//     grid has no cells.
func (p Planner) Build(word string, gridRows, gridCols int) (*WordLayout, error) {
	chars := []rune(word)
	if len(chars) == 0 {
		return nil, &Error{Kind: ErrEmptyWord, Word: word, Index: -1}
	}
	if gridRows <= 0 || gridCols <= 0 {
		return nil, &Error{Kind: ErrWordTooLarge, Word: word, Index: -1, Reason: "grid has no cells"}
	}
	cat := p.Catalog
	if cat == nil {
		cat = glyph.Default()
	}

	glyphs := make([]glyph.Glyph, len(chars))
	for i, r := range chars {
		g, err := cat.Lookup(r)
		if err != nil {
			return nil, &Error{Kind: ErrUnsupportedCharacter, Word: word, Char: r, Index: i}
		}
		glyphs[i] = g
	}

	wl := &WordLayout{
		Word:       word,
		Rows:       gridRows,
		Cols:       gridCols,
		Placements: make([]Placement, 0, len(chars)),
		cells:      make([]int, gridRows*gridCols),
	}
	for i := range wl.cells {
		wl.cells[i] = -1
	}

	cursor := p.LeftMargin
	for i, g := range glyphs {
		w, h := g.Width(), g.Height()
		if p.TopMargin+h > gridRows {
			return nil, &Error{Kind: ErrWordTooLarge, Word: word, Char: chars[i], Index: i,
				Reason: "glyph taller than rows below margin"}
		}
		if cursor+w > gridCols {
			return nil, &Error{Kind: ErrWordTooLarge, Word: word, Char: chars[i], Index: i,
				Reason: "word wider than grid"}
		}

		pl := Placement{
			Index:  i,
			Char:   chars[i],
			Origin: Pos{Row: p.TopMargin, Col: cursor},
			Width:  w,
			Height: h,
		}
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				if !g.On(r, c) {
					continue
				}
				at := Pos{Row: p.TopMargin + r, Col: cursor + c}
				wl.cells[at.Row*gridCols+at.Col] = i
				wl.active++
				pl.Cells = append(pl.Cells, at)
			}
		}
		wl.Placements = append(wl.Placements, pl)
		cursor += w + p.Gap
	}
	return wl, nil
}

// Query reports whether (row, col) is lit and which letter owns it.
// Out-of-bounds positions are inactive.
func (wl *WordLayout) Query(row, col int) Activation {
	if !wl.InBounds(row, col) {
		return Activation{LetterIndex: -1}
	}
	idx := wl.cells[row*wl.Cols+col]
	if idx < 0 {
		return Activation{LetterIndex: -1}
	}
	return Activation{Active: true, LetterIndex: idx}
}

// InBounds reports whether (row, col) lies on the grid.
func (wl *WordLayout) InBounds(row, col int) bool {
	return row >= 0 && row < wl.Rows && col >= 0 && col < wl.Cols
}

// Letters is the number of letter stops in the word.
func (wl *WordLayout) Letters() int { return len(wl.Placements) }

// ActiveCount is the total number of lit cells.
func (wl *WordLayout) ActiveCount() int { return wl.active }

// LetterCells returns the lit cells of letter i (nil if out of range).
func (wl *WordLayout) LetterCells(i int) []Pos {
	if i < 0 || i >= len(wl.Placements) {
		return nil
	}
	return wl.Placements[i].Cells
}

// Reachable checks that every letter with lit pixels has at least one lit cell
// on an occupied grid position, so the letter can actually be clicked.
// Letters without lit pixels are skipped.
func (wl *WordLayout) Reachable(occupied func(row, col int) bool) error {
	for _, pl := range wl.Placements {
		if len(pl.Cells) == 0 {
			continue
		}
		ok := false
		for _, c := range pl.Cells {
			if occupied(c.Row, c.Col) {
				ok = true
				break
			}
		}
		if !ok {
			return &Error{Kind: ErrUnreachableLetter, Word: wl.Word, Char: pl.Char, Index: pl.Index}
		}
	}
	return nil
}
