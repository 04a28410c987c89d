// internal/httpserver/server.go
//
// HTTP server wiring for the Element Decoder backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/table", "/levels".
//   - Game endpoints (optional auth): /game/new, /game/click, /game/advance,
//     /game/guess, GET /game/{id}.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Live games sit in the session store; only finished games and stats
//     are written to SQLite.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/element-decoder/internal/auth"
	"github.com/robalobadob/element-decoder/internal/daily"
	"github.com/robalobadob/element-decoder/internal/game"
	"github.com/robalobadob/element-decoder/internal/levels"
	"github.com/robalobadob/element-decoder/internal/periodic"
	"github.com/robalobadob/element-decoder/internal/store"
	"github.com/robalobadob/element-decoder/internal/words"
)

// Config holds the server settings that come from the environment.
type Config struct {
	Auth         auth.Config
	ClientOrigin string
	DailySalt    string
	Clock        game.Clock // nil means the wall clock
}

// ConfigFromEnv reads CLIENT_ORIGIN, DAILY_SALT and the auth settings.
func ConfigFromEnv() Config {
	return Config{
		Auth:         auth.ConfigFromEnv(),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
	}
}

// Server bundles router, session store, DB handle and level set.
type Server struct {
	r      *chi.Mux
	store  store.Store
	db     *sql.DB
	users  *auth.Users
	daily  *daily.Store
	levels *levels.Set
	cfg    Config

	dailyRoutes *dailyServer
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB, lv *levels.Set, cfg Config) *Server {
	if cfg.Clock == nil {
		cfg.Clock = game.SystemClock{}
	}
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		db:     db,
		users:  auth.NewUsers(db),
		daily:  daily.NewStore(db),
		levels: lv,
		cfg:    cfg,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           60 * 15,
	}))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "element-decoder",
			"endpoints": []string{
				"/health", "/table", "/levels",
				"POST /game/new", "POST /game/click", "POST /game/advance", "POST /game/guess",
				"GET /game/{id}", "/daily/*", "/auth/*",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":       true,
			"sessions": s.store.Len(),
			"daily":    words.Stats(),
		})
	})

	// --- static data ---
	s.r.Get("/table", s.handleTable)
	s.r.Get("/levels", s.handleLevels)

	optional := auth.OptionalAuth(cfg.Auth, s.users)

	// Game endpoints: optional auth (guests can play)
	s.mountGame(s.r.With(optional))

	// Daily Challenge: optional auth (guests can play; result stored on finish)
	s.mountDaily(s.r.With(optional))

	// Auth + profile/stats
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- static data ---------------------------------

type tableRes struct {
	Rows     int                `json:"rows"`
	Cols     int                `json:"cols"`
	Elements []periodic.Element `json:"elements"`
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	t := periodic.Table()
	rows, cols := t.Dims()
	writeJSON(w, http.StatusOK, tableRes{Rows: rows, Cols: cols, Elements: t.Elements})
}

type levelView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Words       int    `json:"words"`
	TimeWindow  int64  `json:"timeWindowMs"`
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	out := make([]levelView, 0, len(s.levels.Levels))
	for _, l := range s.levels.Levels {
		out = append(out, levelView{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
			Words:       len(l.Words),
			TimeWindow:  l.Policy().TimeWindow.Milliseconds(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
