package httpserver

import (
	"sort"

	"github.com/robalobadob/element-decoder/internal/game"
	"github.com/robalobadob/element-decoder/internal/scoring"
	"github.com/robalobadob/element-decoder/internal/store"
)

// stateView is the client-facing game state. The word itself stays hidden
// until it has been typed correctly; the lit cells are the puzzle.
type stateView struct {
	GameID          string         `json:"gameId"`
	Level           string         `json:"level,omitempty"`
	Daily           bool           `json:"daily"`
	Phase           game.Phase     `json:"phase"`
	Length          int            `json:"length"`
	LetterIndex     int            `json:"letterIndex"`
	Word            string         `json:"word,omitempty"`
	Score           int            `json:"score"`
	Streak          int            `json:"streak"`
	BestStreak      int            `json:"bestStreak"`
	Feedback        *game.Feedback `json:"feedback,omitempty"`
	Error           string         `json:"error,omitempty"`
	Breakdown       *breakdownView `json:"breakdown,omitempty"`
	Lit             []litView      `json:"lit"`
	Cells           []cellView     `json:"cells"`
	LetterElapsedMs int64          `json:"letterElapsedMs"`
	Clicks          int            `json:"clicks"`
	Misses          int            `json:"misses"`
	Guesses         int            `json:"guesses"`
	Finished        bool           `json:"finished"`
}

type breakdownView struct {
	scoring.Breakdown
	Total int `json:"total"`
}

type litView struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Letter int `json:"letter"`
}

type cellView struct {
	Row   int               `json:"row"`
	Col   int               `json:"col"`
	State game.ElementState `json:"state"`
}

func viewOf(sess *store.Session, clock game.Clock) stateView {
	g := sess.Game
	st := g.State()
	wl := g.Layout()

	v := stateView{
		GameID:      g.ID,
		Level:       sess.Level,
		Daily:       sess.Daily,
		Phase:       st.Phase,
		Length:      wl.Letters(),
		LetterIndex: st.LetterIndex,
		Score:       st.Score,
		Streak:      st.Streak,
		BestStreak:  st.BestStreak,
		Feedback:    st.Feedback,
		Error:       st.Error,
		Lit:         make([]litView, 0, wl.ActiveCount()),
		Cells:       make([]cellView, 0, len(st.Cells)),
		Clicks:      st.Clicks,
		Misses:      st.Misses,
		Guesses:     st.Guesses,
		Finished:    st.Finished,
	}
	if st.Finished {
		v.Word = st.Word
	} else if st.Phase == game.PhaseFindingLetters {
		v.LetterElapsedMs = clock.Now().Sub(st.LetterStart).Milliseconds()
	}
	if st.Breakdown != nil {
		v.Breakdown = &breakdownView{Breakdown: *st.Breakdown, Total: st.Breakdown.Total()}
	}
	for _, pl := range wl.Placements {
		for _, c := range pl.Cells {
			v.Lit = append(v.Lit, litView{Row: c.Row, Col: c.Col, Letter: pl.Index})
		}
	}
	for p, cs := range st.Cells {
		v.Cells = append(v.Cells, cellView{Row: p.Row, Col: p.Col, State: cs})
	}
	sort.Slice(v.Cells, func(i, j int) bool {
		if v.Cells[i].Row != v.Cells[j].Row {
			return v.Cells[i].Row < v.Cells[j].Row
		}
		return v.Cells[i].Col < v.Cells[j].Col
	})
	return v
}
