// internal/levels/levels.go
//
// Level definitions: word pools plus scoring overrides.
// Responsibilities:
//   - Parse levels from YAML (embedded assets/levels.yaml, or LEVELS_FILE).
//   - Normalize words to lower case and drop the ones that cannot be played.
//   - Pick a random word for a level.
//
// YAML shape:
//   levels:
//     - id: easy
//       name: Easy
//       scoring: { timeWindow: 30s }
//       words: [cat, dog]

package levels

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/element-decoder/assets"
	"github.com/robalobadob/element-decoder/internal/scoring"
)

var (
	ErrUnknownLevel = errors.New("unknown level")
	ErrNoLevels     = errors.New("levels: no playable levels")
)

// Level is one selectable difficulty.
type Level struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Scoring     scoring.Policy `yaml:"scoring" json:"-"`
	Words       []string       `yaml:"words" json:"-"`
}

// Policy is the default scoring policy with this level's overrides applied.
func (l Level) Policy() scoring.Policy { return scoring.Default.Merge(l.Scoring) }

// RandomWord returns a cryptographically random word from the pool.
func (l Level) RandomWord() string {
	if len(l.Words) == 0 {
		return ""
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.Words))))
	return l.Words[n.Int64()]
}

// Set is an ordered collection of levels.
type Set struct {
	Levels []Level `yaml:"levels"`
}

// Get looks a level up by id (case-insensitive).
func (s *Set) Get(id string) (Level, error) {
	for _, l := range s.Levels {
		if strings.EqualFold(l.ID, id) {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w %q", ErrUnknownLevel, id)
}

// Default is the first level.
func (s *Set) Default() Level { return s.Levels[0] }

// Parse decodes YAML and prunes words rejected by fits.
// Levels left without words are dropped; an empty result is an error.
func Parse(data []byte, fits func(string) error) (*Set, error) {
	var raw Set
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("levels: decode: %w", err)
	}

	out := &Set{}
	for _, l := range raw.Levels {
		if l.ID == "" {
			return nil, errors.New("levels: level without id")
		}
		kept := make([]string, 0, len(l.Words))
		for _, w := range l.Words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			if fits != nil {
				if err := fits(w); err != nil {
					log.Warn().Err(err).Str("level", l.ID).Str("word", w).Msg("dropping unplayable word")
					continue
				}
			}
			kept = append(kept, w)
		}
		if len(kept) == 0 {
			log.Warn().Str("level", l.ID).Msg("level has no playable words")
			continue
		}
		l.Words = kept
		if l.Name == "" {
			l.Name = l.ID
		}
		out.Levels = append(out.Levels, l)
	}
	if len(out.Levels) == 0 {
		return nil, ErrNoLevels
	}
	return out, nil
}

// Load reads LEVELS_FILE when set, else the embedded defaults.
func Load(fits func(string) error) (*Set, error) {
	var (
		data []byte
		err  error
	)
	if path := os.Getenv("LEVELS_FILE"); path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = assets.LevelsYAML()
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read: %w", err)
	}
	return Parse(data, fits)
}
