// internal/words/words.go
//
// Word source for the Daily Challenge.
//
// Responsibilities:
//   - Load the daily pool from DAILY_WORDS_FILE, or fall back to the embedded list.
//   - Keep only words made of catalog characters that fit on the board.
//   - Supply RandomWord, IsWord and Stats.
//
// Environment variables:
//   DAILY_WORDS_FILE=/path/to/daily.txt   (one word per line, "#" comments allowed)
//
// Initialization is run once (sync.Once); List can also be built directly for tests.

package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/element-decoder/assets"
	"github.com/robalobadob/element-decoder/internal/glyph"
)

var ErrEmpty = errors.New("words: daily list is empty")

// List is an ordered, de-duplicated word pool.
type List struct {
	words []string
	set   map[string]struct{}
}

// NewList filters raw (already lower-cased) words.
// A word is kept when every character is in the glyph catalog and fits
// (if non-nil) accepts it. Duplicates keep their first position.
func NewList(raw []string, fits func(string) error) *List {
	cat := glyph.Default()
	l := &List{set: make(map[string]struct{}, len(raw))}
	for _, w := range raw {
		if _, dup := l.set[w]; dup {
			continue
		}
		if err := cat.Validate(w); err != nil {
			log.Warn().Err(err).Str("word", w).Msg("skipping word")
			continue
		}
		if fits != nil {
			if err := fits(w); err != nil {
				log.Warn().Err(err).Str("word", w).Msg("skipping word")
				continue
			}
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// Words returns the pool in file order.
func (l *List) Words() []string { return l.words }

// Len is the pool size.
func (l *List) Len() int { return len(l.words) }

// IsWord reports whether w (lower-case) is in the pool.
func (l *List) IsWord(w string) bool {
	_, ok := l.set[w]
	return ok
}

// RandomWord picks a cryptographically random word; "" for an empty pool.
func (l *List) RandomWord() string {
	if len(l.words) == 0 {
		return ""
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	return l.words[n.Int64()]
}

var (
	initOnce   sync.Once
	daily      *List
	initialErr error
)

// Init loads the daily pool exactly once.
// fits is typically game.Fits; it is only consulted on the first call.
func Init(fits func(string) error) error {
	initOnce.Do(func() {
		var raw []string
		var err error
		if path := os.Getenv("DAILY_WORDS_FILE"); path != "" {
			raw, err = readWordFile(path)
		} else {
			raw, err = assets.DailyList()
		}
		if err != nil {
			initialErr = err
			return
		}
		daily = NewList(raw, fits)
		if daily.Len() == 0 {
			initialErr = ErrEmpty
		}
	})
	return initialErr
}

// Daily returns the loaded pool (empty before Init).
func Daily() *List {
	if daily == nil {
		return &List{set: map[string]struct{}{}}
	}
	return daily
}

// Stats returns the number of loaded daily words.
func Stats() int { return Daily().Len() }

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadWords(f)
}
