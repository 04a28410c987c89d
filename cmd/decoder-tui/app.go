package main

import (
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/element-decoder/internal/game"
	"github.com/robalobadob/element-decoder/internal/glyph"
	"github.com/robalobadob/element-decoder/internal/layout"
	"github.com/robalobadob/element-decoder/internal/levels"
	"github.com/robalobadob/element-decoder/internal/periodic"
)

// Board geometry in screen cells.
const (
	boardX = 1
	boardY = 4
	cellW  = 4
)

type theme struct {
	text    tcell.Style
	dim     tcell.Style
	title   tcell.Style
	lit     tcell.Style
	current tcell.Style
	ghost   tcell.Style
	found   tcell.Style
	wrong   tcell.Style
	good    tcell.Style
	bad     tcell.Style
}

func defaultTheme() theme {
	base := tcell.StyleDefault
	return theme{
		text:    base,
		dim:     base.Foreground(tcell.ColorGray),
		title:   base.Foreground(tcell.ColorGreen).Bold(true),
		lit:     base.Foreground(tcell.ColorYellow),
		current: base.Foreground(tcell.ColorYellow).Bold(true).Underline(true),
		ghost:   base.Foreground(tcell.ColorOlive),
		found:   base.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
		wrong:   base.Foreground(tcell.ColorWhite).Background(tcell.ColorRed),
		good:    base.Foreground(tcell.ColorGreen),
		bad:     base.Foreground(tcell.ColorRed),
	}
}

// app is the terminal front end for one level. It owns the game and the
// advance timer; the core has no timers of its own.
type app struct {
	screen       tcell.Screen
	clock        game.Clock
	table        *periodic.PeriodicTable
	level        levels.Level
	settings     Settings
	settingsPath string
	theme        theme

	g         *game.Game
	input     []rune
	advanceAt time.Time
	showClock bool
	pressed   bool
	hover     *periodic.Element // element under the pointer
}

func newApp(s tcell.Screen, lvl levels.Level, st Settings, clock game.Clock) (*app, error) {
	a := &app{
		screen:    s,
		clock:     clock,
		table:     periodic.Table(),
		level:     lvl,
		settings:  st,
		theme:     defaultTheme(),
		showClock: st.ShowClock,
	}
	word := st.Word
	if word == "" {
		word = lvl.RandomWord()
	}
	return a, a.newGame(word)
}

func (a *app) newGame(word string) error {
	g, err := game.New(word, game.WithPolicy(a.level.Policy()), game.WithClock(a.clock))
	if err != nil {
		return err
	}
	a.g = g
	a.input = a.input[:0]
	a.advanceAt = time.Time{}
	return nil
}

// cellAt maps a screen position to a board cell.
func cellAt(x, y int) (layout.Pos, bool) {
	if x < boardX || y < boardY {
		return layout.Pos{}, false
	}
	p := layout.Pos{Row: y - boardY, Col: (x - boardX) / cellW}
	if p.Row >= periodic.Rows || p.Col >= periodic.Cols {
		return layout.Pos{}, false
	}
	return p, true
}

// cellOrigin is the screen position of the first character of a cell.
func cellOrigin(p layout.Pos) (int, int) {
	return boardX + p.Col*cellW, boardY + p.Row
}

// handle applies one terminal event and reports whether to quit.
func (a *app) handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventMouse:
		a.hover = nil
		if p, ok := cellAt(e.Position()); ok {
			if el, ok := a.table.At(p.Row, p.Col); ok {
				a.hover = &el
			}
		}
		down := e.Buttons()&tcell.Button1 != 0
		if down && !a.pressed {
			a.click(e.Position())
		}
		a.pressed = down
	case *tcell.EventKey:
		return a.key(e)
	}
	return false
}

func (a *app) click(x, y int) {
	p, ok := cellAt(x, y)
	if !ok {
		return
	}
	if _, ok := a.table.At(p.Row, p.Col); !ok {
		return
	}
	res, err := a.g.Click(p)
	if err != nil {
		a.g.SetError(err.Error())
		return
	}
	if res == game.ClickCorrect {
		a.advanceAt = a.clock.Now().Add(a.settings.AdvanceDelay)
	}
}

func (a *app) key(e *tcell.EventKey) bool {
	st := a.g.State()
	typing := st.Phase == game.PhaseCompletedWord && !st.Finished

	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		if typing {
			ok, err := a.g.Guess(string(a.input))
			if err != nil {
				a.g.SetError(err.Error())
			} else if !ok {
				a.g.SetError(fmt.Sprintf("%q is not it, try again", string(a.input)))
			} else {
				a.g.SetError("")
			}
			a.input = a.input[:0]
		}
		return false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if typing && len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	r := e.Rune()
	if typing {
		if glyph.Default().Supports(r) && len(a.input) < a.g.Layout().Letters() {
			a.input = append(a.input, unicode.ToLower(r))
		}
		return false
	}
	switch r {
	case 'q':
		return true
	case 'c':
		a.showClock = !a.showClock
		if a.settingsPath != "" {
			if err := saveClock(a.settingsPath, a.showClock); err != nil {
				a.g.SetError(err.Error())
			}
		}
	case 'n':
		if st.Finished {
			if err := a.newGame(a.level.RandomWord()); err != nil {
				a.g.SetError(err.Error())
			}
		}
	}
	return false
}

// tick runs the auto-advance after a correct match.
func (a *app) tick() {
	if a.advanceAt.IsZero() || a.clock.Now().Before(a.advanceAt) {
		return
	}
	a.advanceAt = time.Time{}
	a.g.Advance()
}

func (a *app) render() {
	s := a.screen
	s.Clear()
	st := a.g.State()
	th := a.theme

	a.print(0, 0, th.title, "ELEMENT DECODER")
	a.print(17, 0, th.text, fmt.Sprintf("level %s   score %d   streak %d (best %d)",
		a.level.Name, st.Score, st.Streak, st.BestStreak))
	if a.showClock && st.Phase == game.PhaseFindingLetters {
		a.print(0, 1, th.dim, fmt.Sprintf("letter time %.1fs", a.g.Elapsed().Seconds()))
	}
	if fb := st.Feedback; fb != nil {
		style := th.good
		if fb.Kind == game.FeedbackBad {
			style = th.bad
		}
		a.print(0, 2, style, fb.Text)
	}

	wl := a.g.Layout()
	for r := 0; r < periodic.Rows; r++ {
		for c := 0; c < periodic.Cols; c++ {
			a.renderCell(wl, st, layout.Pos{Row: r, Col: c})
		}
	}

	y := boardY + periodic.Rows + 1
	switch {
	case st.Finished:
		a.print(0, y, th.good, fmt.Sprintf("Solved %q with %d points!  n: next word", st.Word, st.Score))
	case st.Phase == game.PhaseCompletedWord:
		a.print(0, y, th.text, "All letters found. Type the word and press Enter: "+string(a.input)+"_")
	case st.Phase == game.PhaseShowingCorrect && st.Breakdown != nil:
		b := st.Breakdown
		a.print(0, y, th.good, fmt.Sprintf("+%d base  +%d streak  +%d time  = %d", b.Base, b.Streak, b.Time, b.Total()))
	default:
		a.print(0, y, th.text, fmt.Sprintf("Find letter %d of %d", st.LetterIndex+1, wl.Letters()))
	}
	if st.Error != "" {
		a.print(0, y+1, th.bad, st.Error)
	}
	if el := a.hover; el != nil {
		a.print(0, y+2, th.dim, fmt.Sprintf("%-2s  %s  #%d  %.3f  %s",
			el.Symbol, el.Name, el.Number, el.Mass, el.Classification))
	}
	a.print(0, y+3, th.dim, "click elements   c: clock   q/esc: quit")
	s.Show()
}

func (a *app) renderCell(wl *layout.WordLayout, st game.State, p layout.Pos) {
	th := a.theme
	x, y := cellOrigin(p)
	el, ok := a.table.At(p.Row, p.Col)
	act := wl.Query(p.Row, p.Col)

	label := "  "
	if ok {
		label = fmt.Sprintf("%-2s", el.Symbol)
	} else if act.Active {
		label = "··"
	}

	style := th.dim
	switch {
	case st.CellState(p) == game.FoundElement:
		style = th.found
	case st.CellState(p) == game.WrongElementClicked:
		style = th.wrong
	case act.Active && !ok:
		style = th.ghost
	case act.Active && act.LetterIndex == st.LetterIndex && st.Phase == game.PhaseFindingLetters:
		style = th.current
	case act.Active:
		style = th.lit
	case !ok:
		style = th.text
	}
	a.print(x, y, style, label)
}

func (a *app) print(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
