package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/element-decoder/internal/game"
	"github.com/robalobadob/element-decoder/internal/glyph"
	"github.com/robalobadob/element-decoder/internal/layout"
	"github.com/robalobadob/element-decoder/internal/periodic"
	"github.com/robalobadob/element-decoder/internal/scoring"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time      { return f.now }
func (f *fakeClock) Add(d time.Duration) { f.now = f.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func pos(row, col int) layout.Pos { return layout.Pos{Row: row, Col: col} }

func newCAT(t *testing.T, c *fakeClock) *game.Game {
	t.Helper()
	g, err := game.New("CAT", game.WithClock(c), game.WithID("test"))
	require.NoError(t, err)
	return g
}

// Origins for CAT on the periodic grid: C at (3,1), A at (3,5), T at (3,9).

func TestNew_InitialState(t *testing.T) {
	c := newClock()
	g := newCAT(t, c)
	s := g.State()
	assert.Equal(t, "test", g.ID)
	assert.Equal(t, game.PhaseFindingLetters, s.Phase)
	assert.Equal(t, 0, s.LetterIndex)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Streak)
	assert.Equal(t, c.now, s.LetterStart)
	assert.Nil(t, s.Feedback)
	assert.Equal(t, game.Unclicked, s.CellState(pos(3, 1)))
}

func TestClick_FirstCorrect(t *testing.T) {
	c := newClock()
	g := newCAT(t, c)

	res, err := g.Click(pos(3, 1))
	require.NoError(t, err)
	assert.Equal(t, game.ClickCorrect, res)

	s := g.State()
	assert.Equal(t, game.PhaseShowingCorrect, s.Phase)
	assert.Equal(t, 1, s.Streak)
	assert.Equal(t, 200, s.Score)
	require.NotNil(t, s.Breakdown)
	assert.Equal(t, scoring.Breakdown{Base: 100, Streak: 0, Time: 100}, *s.Breakdown)
	require.NotNil(t, s.Feedback)
	assert.Equal(t, game.FeedbackGood, s.Feedback.Kind)
	assert.Equal(t, game.FoundElement, s.CellState(pos(3, 1)))
}

func TestClick_WrongLetterIsMiss(t *testing.T) {
	g := newCAT(t, newClock())

	res, err := g.Click(pos(3, 9)) // belongs to T, pointer is on C
	require.NoError(t, err)
	assert.Equal(t, game.ClickMiss, res)

	s := g.State()
	assert.Equal(t, game.PhaseFindingLetters, s.Phase)
	assert.Equal(t, 0, s.Streak)
	assert.Equal(t, 0, s.Score)
	require.NotNil(t, s.Feedback)
	assert.Equal(t, game.FeedbackBad, s.Feedback.Kind)
	assert.Equal(t, "That element belongs to another letter", s.Feedback.Text)
	assert.Equal(t, game.WrongElementClicked, s.CellState(pos(3, 9)))
	assert.Equal(t, 1, s.Misses)
}

func TestClick_InactiveCellIsMiss(t *testing.T) {
	g := newCAT(t, newClock())
	res, err := g.Click(pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, game.ClickMiss, res)
	assert.Equal(t, "Not part of the word, try again", g.State().Feedback.Text)
}

func TestClick_WrongMarkClearedOnNextClick(t *testing.T) {
	g := newCAT(t, newClock())
	_, _ = g.Click(pos(0, 0))
	_, _ = g.Click(pos(0, 17))
	s := g.State()
	assert.Equal(t, game.Unclicked, s.CellState(pos(0, 0)))
	assert.Equal(t, game.WrongElementClicked, s.CellState(pos(0, 17)))

	_, _ = g.Click(pos(3, 1))
	s = g.State()
	assert.Equal(t, game.Unclicked, s.CellState(pos(0, 17)))
	assert.Nil(t, s.Wrong)
}

func TestMissResetsStreak(t *testing.T) {
	c := newClock()
	g := newCAT(t, c)
	_, _ = g.Click(pos(3, 1))
	require.True(t, g.Advance())
	_, _ = g.Click(pos(3, 5))
	require.Equal(t, 2, g.State().Streak)
	require.True(t, g.Advance())

	before := g.State().Score
	res, err := g.Click(pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, game.ClickMiss, res)
	assert.Equal(t, 0, g.State().Streak)
	assert.Equal(t, 2, g.State().BestStreak)
	assert.Equal(t, before, g.State().Score)
}

func TestFullWord(t *testing.T) {
	c := newClock()
	g := newCAT(t, c)

	_, err := g.Click(pos(3, 1))
	require.NoError(t, err)
	require.True(t, g.Advance())
	s := g.State()
	assert.Equal(t, game.PhaseFindingLetters, s.Phase)
	assert.Equal(t, 1, s.LetterIndex)
	assert.Nil(t, s.Breakdown)

	c.Add(5 * time.Second)
	_, err = g.Click(pos(3, 5))
	require.NoError(t, err)
	assert.Equal(t, scoring.Breakdown{Base: 100, Streak: 25, Time: 75}, *g.State().Breakdown)
	assert.Equal(t, 400, g.State().Score)
	require.True(t, g.Advance())

	// The letter clock restarted at Advance, not at game start.
	c.Add(30 * time.Second)
	_, err = g.Click(pos(3, 9))
	require.NoError(t, err)
	assert.Equal(t, scoring.Breakdown{Base: 100, Streak: 50, Time: 0}, *g.State().Breakdown)
	assert.Equal(t, 550, g.State().Score)
	assert.Equal(t, game.PhaseShowingCorrect, g.State().Phase)

	require.True(t, g.Advance())
	assert.Equal(t, game.PhaseCompletedWord, g.State().Phase)
	assert.False(t, g.Advance())

	ok, err := g.Guess("dog")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, game.PhaseCompletedWord, g.State().Phase)
	assert.False(t, g.State().Finished)

	ok, err = g.Guess("  cAt ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, g.State().Finished)
	assert.Equal(t, 2, g.State().Guesses)

	_, err = g.Guess("cat")
	assert.ErrorIs(t, err, game.ErrFinished)
}

func TestGuess_BeforeCompletion(t *testing.T) {
	g := newCAT(t, newClock())
	_, err := g.Guess("cat")
	assert.ErrorIs(t, err, game.ErrNotCompleted)
}

func TestClick_FoundCellIgnored(t *testing.T) {
	g := newCAT(t, newClock())
	_, _ = g.Click(pos(3, 1))
	g.Advance()
	before := g.State()

	res, err := g.Click(pos(3, 1))
	require.NoError(t, err)
	assert.Equal(t, game.ClickIgnored, res)
	after := g.State()
	assert.Equal(t, before.Score, after.Score)
	assert.Equal(t, before.Streak, after.Streak)
	assert.Equal(t, before.Clicks, after.Clicks)
	assert.Equal(t, game.FoundElement, after.CellState(pos(3, 1)))
}

func TestClick_IgnoredWhileShowingCorrect(t *testing.T) {
	g := newCAT(t, newClock())
	_, _ = g.Click(pos(3, 1))
	res, err := g.Click(pos(3, 5))
	require.NoError(t, err)
	assert.Equal(t, game.ClickIgnored, res)
	assert.Equal(t, game.PhaseShowingCorrect, g.State().Phase)
	assert.Equal(t, game.Unclicked, g.State().CellState(pos(3, 5)))
}

func TestClick_OutOfBounds(t *testing.T) {
	g := newCAT(t, newClock())
	_, err := g.Click(pos(10, 0))
	assert.ErrorIs(t, err, game.ErrOutOfBounds)
	_, err = g.Click(pos(0, -1))
	assert.ErrorIs(t, err, game.ErrOutOfBounds)
	assert.Equal(t, 0, g.State().Clicks)
}

func TestAdvance_OnlyFromShowingCorrect(t *testing.T) {
	g := newCAT(t, newClock())
	assert.False(t, g.Advance())
	assert.Equal(t, 0, g.State().LetterIndex)
}

// Every element on the board, clicked as the first move of a fresh game, either
// scores exactly one breakdown or leaves the score alone and the streak at zero.
// Empty positions are rejected without touching the state.
func TestClickProperty_AllCells(t *testing.T) {
	c := newClock()
	wl := newCAT(t, c).Layout()
	table := periodic.Table()

	for r := 0; r < wl.Rows; r++ {
		for col := 0; col < wl.Cols; col++ {
			g := newCAT(t, c)
			res, err := g.Click(pos(r, col))
			if !table.Occupied(r, col) {
				require.ErrorIs(t, err, game.ErrNoElement, "(%d,%d)", r, col)
				assert.Equal(t, game.ClickIgnored, res)
				assert.Equal(t, 0, g.State().Clicks)
				continue
			}
			require.NoError(t, err)
			s := g.State()

			act := wl.Query(r, col)
			if act.Active && act.LetterIndex == 0 {
				require.Equal(t, game.ClickCorrect, res)
				b := g.Policy().Score(0, 1)
				assert.Equal(t, b.Total(), s.Score)
				assert.Equal(t, 1, s.Streak)
				assert.GreaterOrEqual(t, b.Base, 0)
				assert.GreaterOrEqual(t, b.Streak, 0)
				assert.GreaterOrEqual(t, b.Time, 0)
			} else {
				require.Equal(t, game.ClickMiss, res)
				assert.Equal(t, 0, s.Score)
				assert.Equal(t, 0, s.Streak)
			}
		}
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	g := newCAT(t, newClock())
	s := g.State()
	next, res, err := game.Transition(s, g.Layout(), pos(3, 1), s.LetterStart, scoring.Default)
	require.NoError(t, err)
	assert.Equal(t, game.ClickCorrect, res)
	assert.Equal(t, game.PhaseShowingCorrect, next.Phase)
	assert.Equal(t, game.PhaseFindingLetters, s.Phase)
	assert.Equal(t, game.Unclicked, s.CellState(pos(3, 1)))
	assert.Equal(t, 0, s.Score)
}

func TestRepeatedLetters(t *testing.T) {
	g, err := game.New("TT", game.WithClock(newClock()))
	require.NoError(t, err)

	// The second T is not sought yet.
	res, _ := g.Click(pos(3, 5))
	assert.Equal(t, game.ClickMiss, res)

	res, _ = g.Click(pos(3, 1))
	assert.Equal(t, game.ClickCorrect, res)
	g.Advance()
	res, _ = g.Click(pos(3, 5))
	assert.Equal(t, game.ClickCorrect, res)
	g.Advance()
	assert.Equal(t, game.PhaseCompletedWord, g.State().Phase)
}

func TestNew_LayoutErrors(t *testing.T) {
	_, err := game.New("Z", game.WithGrid(game.Grid{Rows: layout.DefaultTopMargin + 3, Cols: 18}))
	assert.ErrorIs(t, err, layout.ErrWordTooLarge)

	_, err = game.New("C4T")
	assert.ErrorIs(t, err, layout.ErrUnsupportedCharacter)

	_, err = game.New("CAT", game.WithGrid(game.Grid{
		Rows: 10, Cols: 18,
		Occupied: func(int, int) bool { return false },
	}))
	assert.ErrorIs(t, err, layout.ErrUnreachableLetter)
}

func TestBlankLettersAreSkipped(t *testing.T) {
	cat, err := glyph.NewCatalog(map[rune][]string{'A': {"x"}, '_': {" "}})
	require.NoError(t, err)
	planner := layout.Planner{Catalog: cat, Gap: 1}

	g, err := game.New("_A_", game.WithPlanner(planner), game.WithGrid(game.Grid{Rows: 1, Cols: 6}))
	require.NoError(t, err)
	assert.Equal(t, 1, g.State().LetterIndex)

	res, err := g.Click(pos(0, 2))
	require.NoError(t, err)
	assert.Equal(t, game.ClickCorrect, res)
	g.Advance()
	assert.Equal(t, game.PhaseCompletedWord, g.State().Phase)

	blank, err := game.New("__", game.WithPlanner(planner), game.WithGrid(game.Grid{Rows: 1, Cols: 6}))
	require.NoError(t, err)
	assert.Equal(t, game.PhaseCompletedWord, blank.State().Phase)
}

func TestElapsedAndError(t *testing.T) {
	c := newClock()
	g := newCAT(t, c)
	c.Add(3 * time.Second)
	assert.Equal(t, 3*time.Second, g.Elapsed())

	g.SetError("could not save result")
	assert.Equal(t, "could not save result", g.State().Error)
	res, err := g.Click(pos(3, 1))
	require.NoError(t, err)
	assert.Equal(t, game.ClickCorrect, res)
}

func TestClick_LitCellWithoutElement(t *testing.T) {
	g, err := game.New("b", game.WithClock(newClock()))
	require.NoError(t, err)

	// B's bottom row lands on the spacer row
	require.True(t, g.Layout().Query(7, 1).Active)
	require.False(t, periodic.Table().Occupied(7, 1))

	res, err := g.Click(pos(7, 1))
	assert.ErrorIs(t, err, game.ErrNoElement)
	assert.Equal(t, game.ClickIgnored, res)
	s := g.State()
	assert.Equal(t, game.PhaseFindingLetters, s.Phase)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Clicks)

	res, err = g.Click(pos(3, 1))
	require.NoError(t, err)
	assert.Equal(t, game.ClickCorrect, res)
}
