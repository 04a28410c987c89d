// internal/game/engine.go
//
// State machine for a single decoder puzzle.
// Responsibilities:
//   - Build the word layout for a new game and check every letter is clickable.
//   - Resolve clicks against the activation index (correct / miss / ignored).
//   - Score matches through the scoring policy and track the streak.
//   - Move between phases: finding_letters → showing_correct → finding_letters | completed_word.
//   - Confirm the typed word once every letter has been found.
//
// Notes:
//   - Transition is pure: it takes a State and returns a new one.
//   - Game owns one State and is not safe for concurrent use; callers serialize events.
//   - The core owns no timers; the presentation layer decides when to call Advance.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/element-decoder/internal/layout"
	"github.com/robalobadob/element-decoder/internal/periodic"
	"github.com/robalobadob/element-decoder/internal/scoring"
)

var (
	ErrOutOfBounds  = errors.New("click outside the grid")
	ErrNoElement    = errors.New("no element at that position")
	ErrNotCompleted = errors.New("word not completed yet")
	ErrFinished     = errors.New("game finished")
)

// Clock supplies "now".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Grid describes the board a word is laid out on.
type Grid struct {
	Rows, Cols int
	Occupied   func(row, col int) bool // nil means every cell is clickable
}

// PeriodicGrid is the standard periodic-table board.
func PeriodicGrid() Grid {
	t := periodic.Table()
	rows, cols := t.Dims()
	return Grid{Rows: rows, Cols: cols, Occupied: t.Occupied}
}

type config struct {
	clock   Clock
	policy  scoring.Policy
	planner layout.Planner
	grid    Grid
	id      string
}

// Option customizes New.
type Option func(*config)

func WithClock(c Clock) Option { return func(cfg *config) { cfg.clock = c } }

func WithPolicy(p scoring.Policy) Option { return func(cfg *config) { cfg.policy = p } }

func WithPlanner(p layout.Planner) Option { return func(cfg *config) { cfg.planner = p } }

func WithGrid(g Grid) Option { return func(cfg *config) { cfg.grid = g } }

func WithID(id string) Option { return func(cfg *config) { cfg.id = id } }

// Game is one live puzzle: an immutable layout plus the mutable State.
type Game struct {
	ID       string
	layout   *layout.WordLayout
	policy   scoring.Policy
	clock    Clock
	occupied func(row, col int) bool // nil means every cell is clickable
	state    State
}

// New lays out word and starts the game in PhaseFindingLetters.
// Layout errors (*layout.Error) are returned unchanged so callers can
// report unsupported characters and oversize words at level setup.
func New(word string, opts ...Option) (*Game, error) {
	cfg := config{
		clock:   SystemClock{},
		policy:  scoring.Default,
		planner: layout.DefaultPlanner(),
		grid:    PeriodicGrid(),
	}
	for _, o := range opts {
		o(&cfg)
	}

	wl, err := cfg.planner.Build(word, cfg.grid.Rows, cfg.grid.Cols)
	if err != nil {
		return nil, err
	}
	if cfg.grid.Occupied != nil {
		if err := wl.Reachable(cfg.grid.Occupied); err != nil {
			return nil, err
		}
	}

	id := cfg.id
	if id == "" {
		id = randomID()
	}
	now := cfg.clock.Now()
	st := State{
		Phase:       PhaseFindingLetters,
		Word:        word,
		LetterIndex: nextStop(wl, 0),
		LetterStart: now,
		StartedAt:   now,
		Cells:       map[layout.Pos]ElementState{},
	}
	if st.LetterIndex >= wl.Letters() {
		st.LetterIndex = wl.Letters() - 1
		st.Phase = PhaseCompletedWord
	}
	return &Game{
		ID:       id,
		layout:   wl,
		policy:   cfg.policy,
		clock:    cfg.clock,
		occupied: cfg.grid.Occupied,
		state:    st,
	}, nil
}

// Layout exposes the word layout (read-only).
func (g *Game) Layout() *layout.WordLayout { return g.layout }

// Policy is the scoring policy in effect.
func (g *Game) Policy() scoring.Policy { return g.policy }

// State returns a copy of the current state.
func (g *Game) State() State { return g.state.clone() }

// Click applies a click at pos. Grid positions without an element are not
// part of the board: lit pixels stamped there can never be matched.
func (g *Game) Click(pos layout.Pos) (ClickResult, error) {
	if g.occupied != nil && g.layout.InBounds(pos.Row, pos.Col) && !g.occupied(pos.Row, pos.Col) {
		return ClickIgnored, fmt.Errorf("%w: (%d,%d)", ErrNoElement, pos.Row, pos.Col)
	}
	next, res, err := Transition(g.state, g.layout, pos, g.clock.Now(), g.policy)
	if err != nil {
		return res, err
	}
	g.state = next
	return res, nil
}

// Advance leaves PhaseShowingCorrect: onto the next letter, or to
// PhaseCompletedWord after the last one. Reports whether anything changed.
func (g *Game) Advance() bool {
	next, ok := advance(g.state, g.layout, g.clock.Now())
	g.state = next
	return ok
}

// Guess compares the typed word with the target, ignoring case and
// surrounding whitespace. Only valid in PhaseCompletedWord.
// A wrong guess leaves the phase unchanged.
func (g *Game) Guess(text string) (bool, error) {
	if g.state.Finished {
		return false, ErrFinished
	}
	if g.state.Phase != PhaseCompletedWord {
		return false, ErrNotCompleted
	}
	g.state.Guesses++
	if !strings.EqualFold(strings.TrimSpace(text), g.state.Word) {
		return false, nil
	}
	g.state.Finished = true
	g.state.FinishedAt = g.clock.Now()
	return true, nil
}

// Elapsed is the time spent on the current letter, for the clock readout.
func (g *Game) Elapsed() time.Duration {
	return g.clock.Now().Sub(g.state.LetterStart)
}

// SetError records a display-only error. Clicks keep working.
func (g *Game) SetError(msg string) { g.state.Error = msg }

// Transition applies one click to s and returns the resulting state.
// s itself is never modified.
func Transition(s State, wl *layout.WordLayout, pos layout.Pos, now time.Time, p scoring.Policy) (State, ClickResult, error) {
	if !wl.InBounds(pos.Row, pos.Col) {
		return s, ClickIgnored, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pos.Row, pos.Col)
	}
	if s.Phase != PhaseFindingLetters || s.CellState(pos) == FoundElement {
		return s, ClickIgnored, nil
	}

	next := s.clone()
	next.Clicks++
	if next.Wrong != nil {
		delete(next.Cells, *next.Wrong)
		next.Wrong = nil
	}

	act := wl.Query(pos.Row, pos.Col)
	if !act.Active || act.LetterIndex != s.LetterIndex {
		next.Streak = 0
		next.Misses++
		next.Cells[pos] = WrongElementClicked
		next.Wrong = &pos
		next.Feedback = &Feedback{Kind: FeedbackBad, Text: missText(act, s.LetterIndex)}
		return next, ClickMiss, nil
	}

	next.Streak++
	if next.Streak > next.BestStreak {
		next.BestStreak = next.Streak
	}
	b := p.Score(now.Sub(s.LetterStart), next.Streak)
	next.Score += b.Total()
	next.Breakdown = &b
	next.Cells[pos] = FoundElement
	next.Phase = PhaseShowingCorrect
	next.Feedback = &Feedback{Kind: FeedbackGood, Text: matchText(next.Streak)}
	return next, ClickCorrect, nil
}

func advance(s State, wl *layout.WordLayout, now time.Time) (State, bool) {
	if s.Phase != PhaseShowingCorrect {
		return s, false
	}
	next := s.clone()
	next.Breakdown = nil
	next.Feedback = nil
	stop := nextStop(wl, s.LetterIndex+1)
	if stop >= wl.Letters() {
		next.Phase = PhaseCompletedWord
		return next, true
	}
	next.LetterIndex = stop
	next.LetterStart = now
	next.Phase = PhaseFindingLetters
	return next, true
}

// nextStop returns the first letter index >= from that has lit cells,
// or wl.Letters() if there is none. Blank letters cannot be clicked.
func nextStop(wl *layout.WordLayout, from int) int {
	for i := from; i < wl.Letters(); i++ {
		if len(wl.LetterCells(i)) > 0 {
			return i
		}
	}
	return wl.Letters()
}

func matchText(streak int) string {
	if streak >= 2 {
		return fmt.Sprintf("Correct! %d in a row", streak)
	}
	return "Correct!"
}

func missText(act layout.Activation, want int) string {
	if act.Active && act.LetterIndex != want {
		return "That element belongs to another letter"
	}
	return "Not part of the word, try again"
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Fits reports whether word can be played on the periodic-table board with
// the default planner. The error is the one New would return.
func Fits(word string) error {
	_, err := New(word, WithID("fit-check"))
	return err
}
