package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func runServe(cmd *cobra.Command, args []string) error {
	lists, err := words.Load(words.SourceFromEnv())
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	st := store.NewMemoryStore()
	if dbPath := firstNonEmpty(serveDB, os.Getenv("DB_PATH")); dbPath != "" {
		db, err := store.Open(cmd.Context(), dbPath)
		if err != nil {
			return fmt.Errorf("open %s: %w", dbPath, err)
		}
		defer db.Close()
		st = store.NewSQLStore(db)
		log.Info().Str("db", dbPath).Msg("runs persisted to sqlite")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Warn().Msg("JWT_SECRET not set; POST /solve is open")
	}

	srv := httpserver.New(httpserver.Config{
		Lists:     lists,
		Store:     st,
		Params:    solverParams(0, 0),
		JWTSecret: secret,
		DailySalt: getEnv("DAILY_SALT", "local_dev_salt"),
		Timeout:   envDuration("REQUEST_TIMEOUT", 10*time.Minute),
		Logger:    &log.Logger,
	})
	port := firstNonEmpty(servePort, getEnv("PORT", "5175"))
	log.Info().
		Str("port", port).
		Int("answers", len(lists.Answers)).
		Int("allowed", len(lists.Allowed)).
		Msg("starting go-solver")
	return srv.Start(":" + port)
}
