package glyph

// Report summarizes one glyph for authoring checks.
type Report struct {
	Char    rune
	Width   int
	Height  int
	Pixels  int
	Strokes int // 4-connected groups of lit pixels
	Blank   bool
}

// Audit reports every glyph in the catalog, ordered by character.
// Blank glyphs are reported, not rejected: they are legal but place no cells.
func (c *Catalog) Audit() []Report {
	chars := c.Chars()
	out := make([]Report, 0, len(chars))
	for _, r := range chars {
		g := c.glyphs[r]
		px := g.OnCount()
		out = append(out, Report{
			Char:    r,
			Width:   g.Width(),
			Height:  g.Height(),
			Pixels:  px,
			Strokes: strokes(g),
			Blank:   px == 0,
		})
	}
	return out
}

// strokes counts 4-connected components of lit pixels.
func strokes(g Glyph) int {
	h, w := g.Height(), g.Width()
	seen := make([]bool, h*w)
	n := 0
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !g.On(r, c) || seen[r*w+c] {
				continue
			}
			n++
			queue := [][2]int{{r, c}}
			seen[r*w+c] = true
			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					nr, nc := cur[0]+d[0], cur[1]+d[1]
					if nr < 0 || nr >= h || nc < 0 || nc >= w || !g.On(nr, nc) || seen[nr*w+nc] {
						continue
					}
					seen[nr*w+nc] = true
					queue = append(queue, [2]int{nr, nc})
				}
			}
		}
	}
	return n
}
