package layout

import (
	"errors"
	"fmt"

	"github.com/robalobadob/element-decoder/internal/glyph"
)

// Sentinel error kinds. Use errors.Is against these.
var (
	ErrUnsupportedCharacter = glyph.ErrUnsupportedCharacter
	ErrWordTooLarge         = errors.New("word too large for grid")
	ErrEmptyWord            = errors.New("empty word")
	ErrUnreachableLetter    = errors.New("letter has no clickable cell")
)

// Error describes a failed layout. It unwraps to its Kind.
type Error struct {
	Kind   error
	Word   string
	Char   rune
	Index  int // position of the offending character, -1 if not applicable
	Reason string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("layout %q: %v", e.Word, e.Kind)
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (%q at %d)", e.Char, e.Index)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Kind }

// Code maps a layout error to a stable snake_case identifier for API responses.
// Unknown errors map to "layout_failed".
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedCharacter):
		return "unsupported_character"
	case errors.Is(err, ErrWordTooLarge):
		return "word_too_large"
	case errors.Is(err, ErrEmptyWord):
		return "empty_word"
	case errors.Is(err, ErrUnreachableLetter):
		return "unreachable_letter"
	}
	return "layout_failed"
}
