// main.go
//
// Entry point for the Element Decoder API server.
// Responsibilities:
//   - Load .env, set the log level.
//   - Load levels and the daily word pool (dropping words that cannot be played).
//   - Open and migrate SQLite.
//   - Serve the HTTP API.

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/element-decoder/internal/db"
	"github.com/robalobadob/element-decoder/internal/game"
	"github.com/robalobadob/element-decoder/internal/httpserver"
	"github.com/robalobadob/element-decoder/internal/levels"
	"github.com/robalobadob/element-decoder/internal/store"
	"github.com/robalobadob/element-decoder/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	lv, err := levels.Load(game.Fits)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load levels")
	}
	if err := words.Init(game.Fits); err != nil {
		log.Fatal().Err(err).Msg("failed to load daily words")
	}
	log.Info().Int("levels", len(lv.Levels)).Int("daily", words.Stats()).Msg("word pools loaded")

	conn, err := db.OpenMigrated(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer conn.Close()

	srv := httpserver.New(store.NewMemoryStore(), conn, lv, httpserver.ConfigFromEnv())
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting element-decoder")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
