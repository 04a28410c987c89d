// internal/httpserver/routes_game.go
//
// Game endpoints. A game lives in the session store while it is played;
// every event goes through store.Update so clicks on one game are applied
// one at a time.
//
//   POST /game/new      {level?, word?}                       → {gameId, state}
//   POST /game/click    {gameId, row, col} | {gameId, atomicNumber} → {result, state}
//   POST /game/advance  {gameId}                              → {advanced, state}
//   POST /game/guess    {gameId, guess}                       → {correct, state}
//   GET  /game/{id}                                           → state

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/element-decoder/internal/auth"
	"github.com/robalobadob/element-decoder/internal/game"
	"github.com/robalobadob/element-decoder/internal/layout"
	"github.com/robalobadob/element-decoder/internal/levels"
	"github.com/robalobadob/element-decoder/internal/periodic"
	"github.com/robalobadob/element-decoder/internal/scoring"
	"github.com/robalobadob/element-decoder/internal/store"
)

var errNotOwner = errors.New("not owner")

func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/click", s.handleClick)
		r.Post("/advance", s.handleAdvance)
		r.Post("/guess", s.handleGuess)
		r.Get("/{id}", s.handleGetGame)
	})
}

// owner identifies the requester: the user ID when logged in, else the guest cookie.
func (s *Server) owner(w http.ResponseWriter, r *http.Request) (id string, anonymous bool) {
	if me := auth.FromContext(r.Context()); me != nil {
		return me.ID, false
	}
	return s.cfg.Auth.EnsureAnonID(w, r), true
}

// owns reports whether the requester may act on sess. A guest who logs in
// keeps access through the guest cookie.
func (s *Server) owns(r *http.Request, sess *store.Session) bool {
	if me := auth.FromContext(r.Context()); me != nil && me.ID == sess.OwnerID {
		return true
	}
	c, err := r.Cookie(auth.AnonCookieName)
	return err == nil && c.Value != "" && c.Value == sess.OwnerID
}

// startGame builds a game for word, stores the session and records its start.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, word string, policy scoring.Policy, sess *store.Session) (*store.Session, error) {
	g, err := game.New(word, game.WithPolicy(policy), game.WithClock(s.cfg.Clock))
	if err != nil {
		return nil, err
	}
	sess.Game = g
	sess.OwnerID, sess.Anonymous = s.owner(w, r)
	if err := s.store.Save(r.Context(), sess); err != nil {
		return nil, err
	}
	s.recordStart(r.Context(), sess)
	log.Info().Str("gameId", g.ID).Str("level", sess.Level).Bool("daily", sess.Daily).
		Int("letters", g.Layout().Letters()).Msg("game started")
	return sess, nil
}

// writeLayoutError maps game creation errors to 400 responses.
func writeLayoutError(w http.ResponseWriter, err error) {
	var le *layout.Error
	if errors.As(err, &le) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": layout.Code(err), "detail": le.Error()})
		return
	}
	log.Error().Err(err).Msg("start game")
	writeError(w, http.StatusInternalServerError, "save_failed")
}

// ------------------------------- /game/new ---------------------------------

type newGameReq struct {
	Level string `json:"level"`
	Word  string `json:"word"` // optional fixed word (testing, custom puzzles)
}

type newGameRes struct {
	GameID string    `json:"gameId"`
	State  stateView `json:"state"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var lvl levels.Level
	if req.Level == "" {
		lvl = s.levels.Default()
	} else {
		var err error
		if lvl, err = s.levels.Get(req.Level); err != nil {
			writeError(w, http.StatusBadRequest, "unknown_level")
			return
		}
	}

	word := strings.ToLower(strings.TrimSpace(req.Word))
	if word == "" {
		word = lvl.RandomWord()
	}

	sess, err := s.startGame(w, r, word, lvl.Policy(), &store.Session{Level: lvl.ID})
	if err != nil {
		writeLayoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{GameID: sess.Game.ID, State: viewOf(sess, s.cfg.Clock)})
}

// ------------------------------ /game/click --------------------------------

type clickReq struct {
	GameID       string `json:"gameId"`
	Row          *int   `json:"row"`
	Col          *int   `json:"col"`
	AtomicNumber *int   `json:"atomicNumber"`
}

type clickRes struct {
	Result game.ClickResult `json:"result"`
	State  stateView        `json:"state"`
}

// pos resolves the click target; an atomic number wins over row/col.
func (c clickReq) pos() (layout.Pos, bool) {
	if c.AtomicNumber != nil {
		el, err := periodic.Table().ByNumber(*c.AtomicNumber)
		if err != nil {
			return layout.Pos{}, false
		}
		return layout.Pos{Row: el.Row, Col: el.Col}, true
	}
	if c.Row == nil || c.Col == nil {
		return layout.Pos{}, false
	}
	return layout.Pos{Row: *c.Row, Col: *c.Col}, true
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req clickReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	p, ok := req.pos()
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_click")
		return
	}

	var res clickRes
	err := s.store.Update(r.Context(), req.GameID, func(sess *store.Session) error {
		if !s.owns(r, sess) {
			return errNotOwner
		}
		result, err := sess.Game.Click(p)
		if err != nil {
			return err
		}
		res = clickRes{Result: result, State: viewOf(sess, s.cfg.Clock)}
		return nil
	})
	if err != nil {
		s.writeEventError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ----------------------------- /game/advance -------------------------------

type gameIDReq struct {
	GameID string `json:"gameId"`
}

type advanceRes struct {
	Advanced bool      `json:"advanced"`
	State    stateView `json:"state"`
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req gameIDReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var res advanceRes
	err := s.store.Update(r.Context(), req.GameID, func(sess *store.Session) error {
		if !s.owns(r, sess) {
			return errNotOwner
		}
		res.Advanced = sess.Game.Advance()
		res.State = viewOf(sess, s.cfg.Clock)
		return nil
	})
	if err != nil {
		s.writeEventError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ------------------------------ /game/guess --------------------------------

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Correct bool      `json:"correct"`
	State   stateView `json:"state"`
}

// handleGuess confirms the typed word and, on the first correct guess,
// persists the finished game (history, stats, daily result).
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var (
		res guessRes
		fin *finishRecord
	)
	err := s.store.Update(r.Context(), req.GameID, func(sess *store.Session) error {
		if !s.owns(r, sess) {
			return errNotOwner
		}
		ok, err := sess.Game.Guess(req.Guess)
		if err != nil {
			return err
		}
		if ok && !sess.Recorded {
			sess.Recorded = true
			fin = newFinishRecord(sess)
		}
		res = guessRes{Correct: ok, State: viewOf(sess, s.cfg.Clock)}
		return nil
	})
	if err != nil {
		s.writeEventError(w, err)
		return
	}
	if fin != nil {
		s.recordFinish(r.Context(), fin)
	}
	writeJSON(w, http.StatusOK, res)
}

// ------------------------------ GET /game/{id} -----------------------------

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var view stateView
	err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(sess *store.Session) error {
		if !s.owns(r, sess) {
			return errNotOwner
		}
		view = viewOf(sess, s.cfg.Clock)
		return nil
	})
	if err != nil {
		s.writeEventError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// writeEventError maps errors from a game event to HTTP responses.
// Someone else's game is reported as missing.
func (s *Server) writeEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, errNotOwner):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrOutOfBounds):
		writeError(w, http.StatusBadRequest, "out_of_bounds")
	case errors.Is(err, game.ErrNoElement):
		writeError(w, http.StatusBadRequest, "no_element")
	case errors.Is(err, game.ErrNotCompleted):
		writeError(w, http.StatusConflict, "not_completed")
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "finished")
	default:
		log.Error().Err(err).Msg("game event")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}
