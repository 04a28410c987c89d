// cmd/glyphs
//
// Preview tool for letter bitmaps and word layouts.
//
//	glyphs                 print every glyph in the catalog
//	glyphs -word fizz      show the word laid out over the periodic table
//	glyphs -audit          pixel and stroke counts per glyph
//
// Exits non-zero when the word cannot be laid out or a glyph is blank.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/element-decoder/internal/game"
	"github.com/robalobadob/element-decoder/internal/glyph"
	"github.com/robalobadob/element-decoder/internal/layout"
	"github.com/robalobadob/element-decoder/internal/periodic"
)

var (
	colorAlert = color.New(color.FgRed)
	colorTitle = color.New(color.FgGreen)
	colorInfo  = color.New(color.FgHiBlue)
	colorDim   = color.New(color.FgHiBlack)
)

// letterColors cycle per letter index so neighbouring letters stand apart.
var letterColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgCyan, color.Bold),
	color.New(color.FgMagenta, color.Bold),
	color.New(color.FgGreen, color.Bold),
}

func main() {
	word := flag.String("word", "", "lay out `WORD` over the periodic table")
	audit := flag.Bool("audit", false, "report pixel and stroke counts per glyph")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()
	if *noColor {
		color.NoColor = true
	}

	cat := glyph.Default()
	var err error
	switch {
	case *audit:
		err = printAudit(os.Stdout, cat.Audit())
	case *word != "":
		err = printWord(os.Stdout, *word)
	default:
		printCatalog(os.Stdout, cat)
	}
	if err != nil {
		colorAlert.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printCatalog(w io.Writer, cat *glyph.Catalog) {
	for _, r := range cat.Chars() {
		g, _ := cat.Lookup(r)
		colorTitle.Fprintf(w, "%c", r)
		colorDim.Fprintf(w, "  %dx%d\n", g.Width(), g.Height())
		fmt.Fprintln(w, renderGlyph(g))
		fmt.Fprintln(w)
	}
}

func printAudit(w io.Writer, reports []glyph.Report) error {
	colorTitle.Fprintf(w, "%-4s %5s %6s %6s %7s\n", "char", "width", "height", "pixels", "strokes")
	var blank []string
	for _, rp := range reports {
		line := fmt.Sprintf("%-4c %5d %6d %6d %7d", rp.Char, rp.Width, rp.Height, rp.Pixels, rp.Strokes)
		if rp.Blank {
			colorAlert.Fprintln(w, line+"  blank")
			blank = append(blank, string(rp.Char))
			continue
		}
		fmt.Fprintln(w, line)
	}
	if len(blank) > 0 {
		return fmt.Errorf("blank glyphs: %s", strings.Join(blank, " "))
	}
	return nil
}

func printWord(w io.Writer, word string) error {
	t := periodic.Table()
	rows, cols := t.Dims()
	wl, err := layout.Build(word, rows, cols)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, renderBoard(wl, t))
	colorInfo.Fprintf(w, "%d letters, %d lit cells\n", wl.Letters(), wl.ActiveCount())
	return game.Fits(word)
}

// renderGlyph draws a glyph with '#' for lit pixels.
func renderGlyph(g glyph.Glyph) string {
	var b strings.Builder
	for r := 0; r < g.Height(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Width(); c++ {
			if g.On(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// renderBoard draws the table three characters per cell: lit cells show
// their element symbol in the letter's color, other elements are dimmed,
// lit cells over empty table positions show "[]".
func renderBoard(wl *layout.WordLayout, t *periodic.PeriodicTable) string {
	var b strings.Builder
	for r := 0; r < wl.Rows; r++ {
		for c := 0; c < wl.Cols; c++ {
			el, ok := t.At(r, c)
			act := wl.Query(r, c)
			switch {
			case act.Active && ok:
				b.WriteString(letterColors[act.LetterIndex%len(letterColors)].Sprintf("%-3s", el.Symbol))
			case act.Active:
				b.WriteString(colorAlert.Sprint("[] "))
			case ok:
				b.WriteString(colorDim.Sprintf("%-3s", el.Symbol))
			default:
				b.WriteString("   ")
			}
		}
		if r < wl.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
