package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/element-decoder/internal/glyph"
	"github.com/robalobadob/element-decoder/internal/layout"
	"github.com/robalobadob/element-decoder/internal/periodic"
)

func init() { color.NoColor = true }

func TestRenderGlyph(t *testing.T) {
	g, err := glyph.Default().Lookup('!')
	require.NoError(t, err)
	assert.Equal(t, "#\n#\n#\n.\n#", renderGlyph(g))
}

func TestRenderBoard(t *testing.T) {
	tbl := periodic.Table()
	rows, cols := tbl.Dims()
	wl, err := layout.Build("hi!", rows, cols)
	require.NoError(t, err)

	lines := strings.Split(renderBoard(wl, tbl), "\n")
	require.Len(t, lines, rows)
	for _, l := range lines {
		assert.Len(t, l, cols*3)
	}
	assert.True(t, strings.HasPrefix(lines[0], "H  "))
	assert.True(t, strings.HasSuffix(lines[0], "He "))

	// the bottom dot of "!" falls on the empty spacer row
	assert.Equal(t, "[] ", lines[7][9*3:9*3+3])
}

func TestPrintWord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printWord(&buf, "cat"))
	assert.Contains(t, buf.String(), "3 letters, 22 lit cells")

	err := printWord(&buf, "quiz")
	assert.ErrorIs(t, err, layout.ErrWordTooLarge)
}

func TestPrintAudit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printAudit(&buf, glyph.Default().Audit()))
	assert.Contains(t, buf.String(), "strokes")

	err := printAudit(&buf, []glyph.Report{{Char: '?', Blank: true}})
	assert.EqualError(t, err, "blank glyphs: ?")
}
