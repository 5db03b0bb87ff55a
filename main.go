// main.go
//
// Entrypoint for the hangman HTTP service: env + logging setup, word-list
// loading, and server start.

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Danzzilla/Unbeatable-Hangman/internal/httpserver"
	"github.com/Danzzilla/Unbeatable-Hangman/internal/store"
	"github.com/Danzzilla/Unbeatable-Hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", words.Stats()).Msg("dictionary loaded")

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem)
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("starting hangman server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
