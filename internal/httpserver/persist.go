// internal/httpserver/persist.go
//
// Best-effort persistence of game history and user stats. Failures are
// logged and never fail the request: the live game in the store is the
// source of truth while playing.

package httpserver

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/element-decoder/internal/auth"
	"github.com/robalobadob/element-decoder/internal/daily"
	"github.com/robalobadob/element-decoder/internal/store"
)

// finishRecord is a snapshot of a solved game taken under the store lock.
type finishRecord struct {
	GameID     string
	OwnerID    string
	Anonymous  bool
	Word       string
	Score      int
	BestStreak int
	Clicks     int
	Misses     int
	StartedAt  time.Time
	FinishedAt time.Time
	Daily      bool
	DailyDate  string
	WordIndex  int
}

func newFinishRecord(sess *store.Session) *finishRecord {
	st := sess.Game.State()
	return &finishRecord{
		GameID:     sess.Game.ID,
		OwnerID:    sess.OwnerID,
		Anonymous:  sess.Anonymous,
		Word:       st.Word,
		Score:      st.Score,
		BestStreak: st.BestStreak,
		Clicks:     st.Clicks,
		Misses:     st.Misses,
		StartedAt:  st.StartedAt,
		FinishedAt: st.FinishedAt,
		Daily:      sess.Daily,
		DailyDate:  sess.DailyDate,
		WordIndex:  sess.WordIndex,
	}
}

// Elapsed is the time from game start to the correct guess.
func (f *finishRecord) Elapsed() time.Duration { return f.FinishedAt.Sub(f.StartedAt) }

// recordStart inserts the owner row for a new game; the word is not stored
// until the game is solved.
func (s *Server) recordStart(ctx context.Context, sess *store.Session) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Warn().Err(err).Msg("begin tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	ownerCol := "user_id"
	if sess.Anonymous {
		ownerCol = "anonymous_id"
	}
	started := sess.Game.State().StartedAt.UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, `INSERT INTO games (id, `+ownerCol+`, level, daily, started_at, status)
	                                  VALUES (?,?,?,?,?,'playing')`,
		sess.Game.ID, sess.OwnerID, sess.Level, sess.Daily, started); err != nil {
		log.Warn().Err(err).Str("gameId", sess.Game.ID).Msg("insert game row")
		return
	}
	if !sess.Anonymous {
		if err := auth.BumpPlayed(ctx, tx, sess.OwnerID); err != nil {
			log.Warn().Err(err).Str("user", sess.OwnerID).Msg("bump played")
			return
		}
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("commit game start")
	}
}

// recordFinish marks the game solved, updates the user's stats and stores
// the daily result (once per owner and date).
func (s *Server) recordFinish(ctx context.Context, f *finishRecord) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Warn().Err(err).Msg("begin tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE games SET status='solved', word=?, score=?, clicks=?, misses=?, finished_at=?
	                                  WHERE id=?`,
		f.Word, f.Score, f.Clicks, f.Misses, f.FinishedAt.UTC().Format(time.RFC3339), f.GameID); err != nil {
		log.Warn().Err(err).Str("gameId", f.GameID).Msg("finish game")
	}
	if !f.Anonymous {
		if err := auth.BumpSolved(ctx, tx, f.OwnerID, f.Score, f.BestStreak); err != nil {
			log.Warn().Err(err).Str("user", f.OwnerID).Msg("bump solved")
		}
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("commit game finish")
		return
	}

	if f.Daily {
		ok, err := s.daily.InsertResult(ctx, daily.Result{
			UserID:    f.OwnerID,
			Date:      f.DailyDate,
			WordIndex: f.WordIndex,
			Score:     f.Score,
			ElapsedMs: f.Elapsed().Milliseconds(),
		})
		if err != nil {
			log.Warn().Err(err).Str("gameId", f.GameID).Msg("insert daily result")
			return
		}
		if !ok {
			log.Info().Str("owner", f.OwnerID).Str("date", f.DailyDate).Msg("daily already recorded")
		}
	}
	log.Info().Str("gameId", f.GameID).Int("score", f.Score).Dur("elapsed", f.Elapsed()).Msg("game solved")
}

// claimAnonGames transfers any anonymous games to a user account after auth.
func (s *Server) claimAnonGames(ctx context.Context, anonID, userID string) {
	if anonID == "" || userID == "" {
		return
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE games SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID); err != nil {
		log.Warn().Err(err).Msg("claim anon games")
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE OR IGNORE daily_results SET user_id=? WHERE user_id=?`, userID, anonID); err != nil {
		log.Warn().Err(err).Msg("claim anon daily results")
	}
}
