package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/element-decoder/internal/auth"
	"github.com/robalobadob/element-decoder/internal/daily"
	"github.com/robalobadob/element-decoder/internal/db"
	"github.com/robalobadob/element-decoder/internal/game"
	"github.com/robalobadob/element-decoder/internal/levels"
	"github.com/robalobadob/element-decoder/internal/periodic"
	"github.com/robalobadob/element-decoder/internal/store"
	"github.com/robalobadob/element-decoder/internal/words"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

const testLevels = `
levels:
  - id: easy
    name: Easy
    words: [cat]
  - id: quick
    scoring: { timeWindow: 5s }
    words: [hi!]
`

type env struct {
	t     *testing.T
	srv   *httptest.Server
	app   *Server
	clock *fakeClock
	db    *sql.DB
	cfg   Config
}

func newEnv(t *testing.T) *env {
	t.Helper()
	require.NoError(t, words.Init(game.Fits))

	conn, err := db.OpenMigrated(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	lv, err := levels.Parse([]byte(testLevels), game.Fits)
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)}
	cfg := Config{
		Auth:         auth.Config{Secret: []byte("test"), ExpiresDays: 1, CookieName: "tok"},
		ClientOrigin: "http://localhost:5173",
		DailySalt:    "test-salt",
		Clock:        clock,
	}
	s := New(store.NewMemoryStore(), conn, lv, cfg)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return &env{t: t, srv: ts, app: s, clock: clock, db: conn, cfg: cfg}
}

type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func (e *env) client() *client {
	jar, err := cookiejar.New(nil)
	require.NoError(e.t, err)
	return &client{t: e.t, base: e.srv.URL, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path string, body, out any) int {
	c.t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, c.base+path, rd)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer res.Body.Close()
	if out != nil {
		require.NoError(c.t, json.NewDecoder(res.Body).Decode(out))
	}
	return res.StatusCode
}

type errorRes struct {
	Error string `json:"error"`
}

// clickable returns a lit, occupied cell of the current letter.
func clickable(t *testing.T, st stateView) periodic.Element {
	t.Helper()
	table := periodic.Table()
	for _, l := range st.Lit {
		if l.Letter != st.LetterIndex {
			continue
		}
		if el, ok := table.At(l.Row, l.Col); ok {
			return el
		}
	}
	t.Fatalf("no clickable cell for letter %d", st.LetterIndex)
	return periodic.Element{}
}

// solve clicks through every letter, alternating row/col and atomic-number clicks.
func (c *client) solve(st stateView) stateView {
	c.t.Helper()
	for i := 0; st.Phase != game.PhaseCompletedWord; i++ {
		el := clickable(c.t, st)
		body := map[string]any{"gameId": st.GameID, "row": el.Row, "col": el.Col}
		if i%2 == 1 {
			body = map[string]any{"gameId": st.GameID, "atomicNumber": el.Number}
		}
		var cr clickRes
		require.Equal(c.t, http.StatusOK, c.do(http.MethodPost, "/game/click", body, &cr))
		require.Equal(c.t, game.ClickCorrect, cr.Result)
		require.Equal(c.t, game.PhaseShowingCorrect, cr.State.Phase)

		var ar advanceRes
		require.Equal(c.t, http.StatusOK, c.do(http.MethodPost, "/game/advance", gameIDReq{st.GameID}, &ar))
		require.True(c.t, ar.Advanced)
		st = ar.State
	}
	return st
}

func setup(t *testing.T) (*env, *client) {
	e := newEnv(t)
	return e, e.client()
}

func TestStaticEndpoints(t *testing.T) {
	_, c := setup(t)

	var health map[string]any
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/health", nil, &health))
	assert.Equal(t, true, health["ok"])

	var table tableRes
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/table", nil, &table))
	assert.Equal(t, 10, table.Rows)
	assert.Equal(t, 18, table.Cols)
	assert.Len(t, table.Elements, 118)

	var lv []levelView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/levels", nil, &lv))
	require.Len(t, lv, 2)
	assert.Equal(t, "easy", lv[0].ID)
	assert.Equal(t, int64(5000), lv[1].TimeWindow)

	var nf errorRes
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/nope", nil, &nf))
	assert.Equal(t, "not_found", nf.Error)
}

func TestGuestGameFlow(t *testing.T) {
	_, c := setup(t)

	var ng newGameRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/new", newGameReq{}, &ng))
	st := ng.State
	assert.Equal(t, game.PhaseFindingLetters, st.Phase)
	assert.Equal(t, 3, st.Length)
	assert.Empty(t, st.Word, "word hidden while playing")
	assert.NotEmpty(t, st.Lit)

	// a miss: hydrogen sits above the word
	var miss clickRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/click",
		map[string]any{"gameId": ng.GameID, "row": 0, "col": 0}, &miss))
	assert.Equal(t, game.ClickMiss, miss.Result)
	require.NotNil(t, miss.State.Feedback)
	assert.Equal(t, game.FeedbackBad, miss.State.Feedback.Kind)

	// guessing before all letters are found
	var e errorRes
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/game/guess", guessReq{ng.GameID, "cat"}, &e))
	assert.Equal(t, "not_completed", e.Error)

	st = c.solve(st)
	assert.Equal(t, 200+225+250, st.Score)
	assert.Equal(t, 3, st.BestStreak)

	var wrong guessRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/guess", guessReq{ng.GameID, "dog"}, &wrong))
	assert.False(t, wrong.Correct)
	assert.Empty(t, wrong.State.Word)

	var right guessRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/guess", guessReq{ng.GameID, " CAT "}, &right))
	assert.True(t, right.Correct)
	assert.Equal(t, "cat", right.State.Word)
	assert.True(t, right.State.Finished)

	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/game/guess", guessReq{ng.GameID, "cat"}, &e))
	assert.Equal(t, "finished", e.Error)

	var got stateView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/game/"+ng.GameID, nil, &got))
	assert.Equal(t, "cat", got.Word)
	assert.Equal(t, 4, got.Clicks)
	assert.Equal(t, 1, got.Misses)

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/games/mine", nil, nil))
}

func TestGameErrors(t *testing.T) {
	e, c := setup(t)
	var er errorRes

	cases := []struct {
		req  newGameReq
		code string
	}{
		{newGameReq{Word: "quiz"}, "word_too_large"},
		{newGameReq{Word: "c4t"}, "unsupported_character"},
		{newGameReq{Level: "nightmare"}, "unknown_level"},
	}
	for _, tc := range cases {
		assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/game/new", tc.req, &er))
		assert.Equal(t, tc.code, er.Error)
	}

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/game/click",
		map[string]any{"gameId": "missing", "row": 3, "col": 1}, &er))

	var ng newGameRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/new", newGameReq{Level: "QUICK"}, &ng))
	assert.Equal(t, "quick", ng.State.Level)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/game/click",
		map[string]any{"gameId": ng.GameID, "row": 20, "col": 1}, &er))
	assert.Equal(t, "out_of_bounds", er.Error)

	// the spacer row between the main table and the f-block has no elements
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/game/click",
		map[string]any{"gameId": ng.GameID, "row": 7, "col": 1}, &er))
	assert.Equal(t, "no_element", er.Error)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/game/click",
		map[string]any{"gameId": ng.GameID, "row": 3}, &er))
	assert.Equal(t, "bad_click", er.Error)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/game/click",
		map[string]any{"gameId": ng.GameID, "atomicNumber": 200}, &er))

	var adv advanceRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/advance", gameIDReq{ng.GameID}, &adv))
	assert.False(t, adv.Advanced)

	other := e.client()
	assert.Equal(t, http.StatusNotFound, other.do(http.MethodGet, "/game/"+ng.GameID, nil, &er))
}

func TestAccountStatsAndHistory(t *testing.T) {
	e, c := setup(t)

	// a guest game claimed on signup
	var guest newGameRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/new", newGameReq{}, &guest))

	var me map[string]any
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/auth/signup",
		credentialsReq{Username: "dana", Password: "password1"}, &me))
	assert.Equal(t, "dana", me["username"])

	var dup errorRes
	assert.Equal(t, http.StatusConflict, e.client().do(http.MethodPost, "/auth/signup",
		credentialsReq{Username: "DANA", Password: "password1"}, &dup))

	// the guest game stays playable after login
	var still stateView
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/game/"+guest.GameID, nil, &still))

	var ng newGameRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/new", newGameReq{Word: "hi!"}, &ng))
	e.clock.Add(2 * time.Second)
	c.solve(ng.State)
	var gr guessRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/guess", guessReq{ng.GameID, "HI!"}, &gr))
	require.True(t, gr.Correct)

	var stats map[string]any
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/stats/me", nil, &stats))
	assert.EqualValues(t, 1, stats["gamesPlayed"])
	assert.EqualValues(t, 1, stats["solved"])
	assert.EqualValues(t, gr.State.Score, stats["bestScore"])

	var mine []gameRow
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/games/mine", nil, &mine))
	require.Len(t, mine, 2)
	byID := map[string]gameRow{}
	for _, g := range mine {
		byID[g.ID] = g
	}
	assert.Equal(t, "solved", byID[ng.GameID].Status)
	assert.Equal(t, "hi!", byID[ng.GameID].Word)
	assert.Equal(t, "playing", byID[guest.GameID].Status)
	assert.Empty(t, byID[guest.GameID].Word)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/auth/logout", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/auth/me", nil, nil))

	var bad errorRes
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/auth/login",
		credentialsReq{Username: "dana", Password: "nope-nope"}, &bad))
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/auth/login",
		credentialsReq{Username: "dana", Password: "password1"}, &me))
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/auth/me", nil, nil))
}

func TestDailyChallenge(t *testing.T) {
	e, c := setup(t)

	var first dailyNewRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/daily/new", nil, &first))
	assert.False(t, first.Played)
	assert.Equal(t, "2026-10-17", first.Date)
	require.NotNil(t, first.State)
	assert.True(t, first.State.Daily)

	var again dailyNewRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/daily/new", nil, &again))
	assert.Equal(t, first.GameID, again.GameID, "same session while playing")

	want := daily.Pick(e.clock.Now(), e.cfg.DailySalt, words.Daily().Words())
	e.clock.Add(30 * time.Second)
	c.solve(*first.State)
	var gr guessRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/game/guess", guessReq{first.GameID, want.Word}, &gr))
	require.True(t, gr.Correct)

	var done dailyNewRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/daily/new", nil, &done))
	assert.True(t, done.Played)
	assert.Empty(t, done.GameID)

	var lb struct {
		Date string        `json:"date"`
		Rows []daily.LBRow `json:"rows"`
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/daily/leaderboard", nil, &lb))
	require.Len(t, lb.Rows, 1)
	assert.Equal(t, gr.State.Score, lb.Rows[0].Score)
	assert.Equal(t, "guest", lb.Rows[0].Username)
	assert.Equal(t, int64(30000), lb.Rows[0].ElapsedMs)

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/daily/leaderboard?date=2020-01-01", nil, &lb))
	assert.Empty(t, lb.Rows)
}

func TestDailySessionsFromPastDaysAreDropped(t *testing.T) {
	e, c := setup(t)
	other := e.client()
	sessions := func() []string {
		d := e.app.dailyRoutes
		d.mu.Lock()
		defer d.mu.Unlock()
		keys := make([]string, 0, len(d.sessions))
		for k := range d.sessions {
			keys = append(keys, k)
		}
		return keys
	}

	var res dailyNewRes
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/daily/new", nil, &res))
	require.Equal(t, http.StatusOK, other.do(http.MethodPost, "/daily/new", nil, &res))
	assert.Len(t, sessions(), 2)

	e.clock.Add(24 * time.Hour)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/daily/new", nil, &res))
	assert.Equal(t, "2026-10-18", res.Date)
	keys := sessions()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasSuffix(keys[0], "|2026-10-18"), keys[0])
}
