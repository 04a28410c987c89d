// internal/glyph/catalog.go
//
// Letter catalog: maps each supported character to its Glyph.
// Responsibilities:
//   - Hold the built-in letter table (A–Z plus "!").
//   - Parse it once into canonical Glyphs (sync.Once).
//   - Case-insensitive lookup and whole-word validation.
//
// Notes:
//   - Letters are stored upper-case; lookups upper-case their input.
//   - A glyph with no lit pixels is accepted here; see Audit.

package glyph

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode"
)

var (
	// ErrUnsupportedCharacter is returned for characters missing from the catalog.
	ErrUnsupportedCharacter = errors.New("unsupported character")
	// ErrDuplicateCharacter is returned when two table entries map to the same character.
	ErrDuplicateCharacter = errors.New("duplicate catalog character")
)

// letters is the built-in table, one string per row.
var letters = map[rune][]string{
	'A': {"xxx", "x x", "xxx", "x x"},
	'B': {"xx", "x x", "xx", "x x", "xx"},
	'C': {"xxx", "x", "xxx"},
	'D': {"xxx", "x  x", "x  x", "xxx"},
	'E': {"xxx", "xx", "x", "xxx"},
	'F': {"xxx", "x  ", "xx ", "x  "},
	'G': {"xxxx", "x", "x xx", "xxxx"},
	'H': {"x x", "xxx", "x x"},
	'I': {"xxx", " x", " x ", "xxx"},
	// J's blank top row and K's trailing blanks are part of their shapes.
	'J': {" ", "xxx", "  x", "x x", "xxx"},
	'K': {"x x", "xx", "x x  ", ""},
	'L': {"x  ", "x  ", "xxx"},
	'M': {"xxxxx", "x x x", "x   x"},
	'N': {"x  x", "xx x", "x xx"},
	'O': {" xx", "x  x", "x  x", " xx"},
	'P': {"xx", "x x", "xx", "x"},
	'Q': {"xxx", "x x", "xxx", "   x"},
	'R': {"xx", "x x", "xx", "x x"},
	'S': {"xxx", "x", " xx", "xxx"},
	'T': {"xxx", " x", " x"},
	'U': {"x  x", "x  x", " xx"},
	'V': {"x   x", " x x", "  x"},
	'W': {"x   x", "x x x", "xxxxx"},
	'X': {"x x", " x", "x x"},
	'Y': {"x x", "x x", " x", " x"},
	'Z': {"xxxx", "  x", " x", "xxxx"},
	'!': {"x", "x", "x", "", "x"},
}

// Catalog is an immutable character → Glyph table.
type Catalog struct {
	glyphs map[rune]Glyph
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog, parsed on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(letters)
		if err != nil {
			panic("glyph: built-in letter table: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// NewCatalog parses a table of row strings into a Catalog.
// Keys are folded to upper case; two keys folding to the same rune is an error.
func NewCatalog(table map[rune][]string) (*Catalog, error) {
	c := &Catalog{glyphs: make(map[rune]Glyph, len(table))}
	for r, rows := range table {
		key := unicode.ToUpper(r)
		if _, dup := c.glyphs[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCharacter, key)
		}
		c.glyphs[key] = FromRows(key, rows)
	}
	return c, nil
}

// NewCatalogFromSources parses raw multi-line patterns (see Normalize).
func NewCatalogFromSources(sources map[rune]string) (*Catalog, error) {
	c := &Catalog{glyphs: make(map[rune]Glyph, len(sources))}
	for r, src := range sources {
		key := unicode.ToUpper(r)
		if _, dup := c.glyphs[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCharacter, key)
		}
		c.glyphs[key] = Normalize(key, src)
	}
	return c, nil
}

// Lookup returns the glyph for r (case-insensitive).
func (c *Catalog) Lookup(r rune) (Glyph, error) {
	g, ok := c.glyphs[unicode.ToUpper(r)]
	if !ok {
		return Glyph{}, fmt.Errorf("%w %q", ErrUnsupportedCharacter, r)
	}
	return g, nil
}

// Supports reports whether r has a glyph.
func (c *Catalog) Supports(r rune) bool {
	_, ok := c.glyphs[unicode.ToUpper(r)]
	return ok
}

// Validate checks that every character of word is in the catalog.
// The returned error wraps ErrUnsupportedCharacter and names the first offender.
func (c *Catalog) Validate(word string) error {
	for i, r := range []rune(word) {
		if !c.Supports(r) {
			return fmt.Errorf("%w %q at position %d", ErrUnsupportedCharacter, r, i)
		}
	}
	return nil
}

// Chars returns the supported characters in ascending order.
func (c *Catalog) Chars() []rune {
	out := make([]rune, 0, len(c.glyphs))
	for r := range c.glyphs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len is the number of supported characters.
func (c *Catalog) Len() int { return len(c.glyphs) }
