// internal/game/types.go
//
// Core type definitions for the decoder state machine.
// Defines:
//   - Phase: stage of solving one word.
//   - ElementState: per-cell display annotation.
//   - Feedback / ClickResult: outcome of a click.
//   - State: the full mutable game state, owned by Game.

package game

import (
	"time"

	"github.com/robalobadob/element-decoder/internal/layout"
	"github.com/robalobadob/element-decoder/internal/scoring"
)

// Phase is the current stage of solving a word.
type Phase string

const (
	PhaseFindingLetters Phase = "finding_letters" // waiting for a click on the current letter
	PhaseShowingCorrect Phase = "showing_correct" // a match was just scored; waiting for Advance
	PhaseCompletedWord  Phase = "completed_word"  // every letter found; waiting for the typed word
)

// ElementState annotates one grid cell for rendering.
type ElementState string

const (
	Unclicked           ElementState = "unclicked"
	FoundElement        ElementState = "found"
	WrongElementClicked ElementState = "wrong"
)

// FeedbackKind is the tone of the last message.
type FeedbackKind string

const (
	FeedbackGood FeedbackKind = "good"
	FeedbackBad  FeedbackKind = "bad"
)

// Feedback is the message shown after a click.
type Feedback struct {
	Kind FeedbackKind `json:"type"`
	Text string       `json:"text"`
}

// ClickResult classifies what a click did.
type ClickResult string

const (
	ClickCorrect ClickResult = "correct"
	ClickMiss    ClickResult = "miss"
	ClickIgnored ClickResult = "ignored" // wrong phase, or cell already found
)

// State holds everything that changes while a word is being solved.
type State struct {
	Phase       Phase
	Word        string
	LetterIndex int // letter currently sought
	Score       int
	Streak      int // consecutive correct clicks since the last miss
	BestStreak  int
	LetterStart time.Time // when the current letter became current
	StartedAt   time.Time
	FinishedAt  time.Time

	Feedback  *Feedback
	Error     string             // display-only runtime error
	Breakdown *scoring.Breakdown // last match, shown while ShowingCorrect

	Cells map[layout.Pos]ElementState // cells absent from the map are Unclicked
	Wrong *layout.Pos                 // cell carrying the transient miss mark

	Clicks   int
	Misses   int
	Guesses  int
	Finished bool // the typed word matched
}

// CellState returns the annotation for p.
func (s State) CellState(p layout.Pos) ElementState {
	if st, ok := s.Cells[p]; ok {
		return st
	}
	return Unclicked
}

// clone copies s deeply enough that mutating the copy leaves s untouched.
func (s State) clone() State {
	out := s
	out.Cells = make(map[layout.Pos]ElementState, len(s.Cells)+1)
	for k, v := range s.Cells {
		out.Cells[k] = v
	}
	if s.Feedback != nil {
		fb := *s.Feedback
		out.Feedback = &fb
	}
	if s.Breakdown != nil {
		b := *s.Breakdown
		out.Breakdown = &b
	}
	if s.Wrong != nil {
		w := *s.Wrong
		out.Wrong = &w
	}
	return out
}
