// apps/go-solver/main.go
//
// Entry point for the Wordle strategy solver.
//   - Loads .env (if present) and configures zerolog from LOG_LEVEL / LOG_FORMAT.
//   - Dispatches to the cobra commands in cli.go.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func main() {
	_ = godotenv.Load()
	setupLogging()

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, solver.ErrExhausted) {
			fmt.Fprintln(os.Stderr, "no strategy found within depth bound")
		} else {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

func setupLogging() {
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if getEnv("LOG_FORMAT", "console") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}
