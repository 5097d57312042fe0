package main

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "solver",
		Short: "Builds and serves optimal Wordle guessing strategies",
		Long: `solver searches for a decision tree that identifies every Wordle answer
with as few total guesses as it can find, writes it as a strategy file, and can
replay or serve it over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Search for a strategy and write it to a file",
		Args:  cobra.NoArgs,
		RunE:  runSolve,
	}
	solveBreadth      int
	solveAnswersOnly  bool
	solveStartingWord string
	solveWorkers      int
	solveOut          string
	solveDB           string

	playCmd = &cobra.Command{
		Use:   "play [answer]",
		Short: "Replay a strategy file against an answer",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playStrategy string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	servePort string
	serveDB   string

	tokenCmd = &cobra.Command{
		Use:   "token [subject]",
		Short: "Mint a bearer token for POST /solve",
		Args:  cobra.ExactArgs(1),
		RunE:  runToken,
	}
	tokenDays int
)

// Flags left unset fall back to the environment when the command runs, after .env is loaded.
func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveBreadth, "n-guesses", "n", 0, "Guesses explored per node (default $SOLVER_BREADTH or 20)")
	solveCmd.Flags().BoolVar(&solveAnswersOnly, "answers-only", false, "Only guess words that can be answers")
	solveCmd.Flags().StringVar(&solveStartingWord, "starting-word", "", "Force the first guess")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 0, "Concurrent workers (default $SOLVER_WORKERS or one per CPU)")
	solveCmd.Flags().StringVarP(&solveOut, "out", "o", "out.txt", "Strategy file to write")
	solveCmd.Flags().StringVar(&solveDB, "db", "", "Also record the run in this SQLite database (default $DB_PATH)")

	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVarP(&playStrategy, "strategy", "s", "out.txt", "Strategy file to replay")

	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (default $PORT or 5175)")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "SQLite database for runs (default $DB_PATH; empty keeps runs in memory)")

	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().IntVar(&tokenDays, "days", 0, "Token lifetime in days (default $JWT_EXPIRES_DAYS or 14)")
}
