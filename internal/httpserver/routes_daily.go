// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes two endpoints under /daily:
//   - POST /daily/new         → start today's puzzle (creates or reuses the session)
//   - GET  /daily/leaderboard → top 20 results for today (or ?date=YYYY-MM-DD)
//
// A daily game is an ordinary session tagged daily, played through /game/*.
// Each player can record one result per day (UNIQUE(user_id, date)).
// The word is picked deterministically from date + DAILY_SALT.

package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/element-decoder/internal/daily"
	"github.com/robalobadob/element-decoder/internal/scoring"
	"github.com/robalobadob/element-decoder/internal/store"
	"github.com/robalobadob/element-decoder/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	mu       sync.Mutex        // guards sessions
	sessions map[string]string // owner|date → game ID
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{srv: s, sessions: make(map[string]string)}
	s.dailyRoutes = dd
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

func (d *dailyServer) today() daily.Puzzle {
	return daily.Pick(d.srv.cfg.Clock.Now(), d.srv.cfg.DailySalt, words.Daily().Words())
}

type dailyNewRes struct {
	GameID string     `json:"gameId"`
	Date   string     `json:"date"`
	Played bool       `json:"played"`
	State  *stateView `json:"state,omitempty"`
}

// handleNew starts today's puzzle.
//   - Already recorded for today → Played=true, no game.
//   - A live session for today → the same game again.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	s := d.srv
	uid, _ := s.owner(w, r)
	pz := d.today()
	if pz.Word == "" {
		writeError(w, http.StatusServiceUnavailable, "no_daily_words")
		return
	}

	if played, err := s.daily.AlreadyPlayed(r.Context(), uid, pz.Date); err == nil && played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: pz.Date, Played: true})
		return
	}

	key := uid + "|" + pz.Date
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pruneLocked(pz.Date)

	if id, ok := d.sessions[key]; ok {
		var view stateView
		err := s.store.Update(r.Context(), id, func(sess *store.Session) error {
			view = viewOf(sess, s.cfg.Clock)
			return nil
		})
		if err == nil {
			writeJSON(w, http.StatusOK, dailyNewRes{GameID: id, Date: pz.Date, State: &view})
			return
		}
		delete(d.sessions, key) // expired from the store
	}

	sess, err := s.startGame(w, r, pz.Word, scoring.Default, &store.Session{
		Level:     "daily",
		Daily:     true,
		DailyDate: pz.Date,
		WordIndex: pz.WordIndex,
	})
	if err != nil {
		writeLayoutError(w, err)
		return
	}
	d.sessions[key] = sess.Game.ID
	view := viewOf(sess, s.cfg.Clock)
	writeJSON(w, http.StatusOK, dailyNewRes{GameID: sess.Game.ID, Date: pz.Date, State: &view})
}

// pruneLocked drops sessions from days other than date. Callers hold d.mu.
func (d *dailyServer) pruneLocked(date string) {
	for key := range d.sessions {
		if !strings.HasSuffix(key, "|"+date) {
			delete(d.sessions, key)
		}
	}
}

func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = d.today().Date
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := d.srv.daily.Leaderboard(r.Context(), date, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": date, "rows": rows})
}
