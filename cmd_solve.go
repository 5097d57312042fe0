package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/tree"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// solverParams layers flags over SOLVER_* variables over the defaults.
func solverParams(breadth, workers int) solver.Params {
	p := solver.DefaultParams()
	p.Breadth = envInt("SOLVER_BREADTH", p.Breadth)
	p.Workers = envInt("SOLVER_WORKERS", p.Workers)
	if breadth != 0 {
		p.Breadth = breadth
	}
	if workers != 0 {
		p.Workers = workers
	}
	return p
}

func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Wordle solver!")

	lists, err := words.Load(words.SourceFromEnv())
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	answers := lists.Answers
	guesses := lists.Guesses(solveAnswersOnly)

	p := solverParams(solveBreadth, solveWorkers)
	if solveStartingWord != "" {
		w, err := words.Parse(solveStartingWord)
		if err != nil {
			return err
		}
		p = p.WithStartingWord(w)
	}

	var bar *progressbar.ProgressBar
	listener := solver.NewListener().
		OnStart(func(n int) {
			bar = progressbar.NewOptions(n,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("solving"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}).
		OnCandidate(func(g words.Word) {
			bar.Describe(g.String() + "...")
		}).
		OnEvaluated(func(s tree.Summary, ok bool) {
			_ = bar.Clear()
			if ok {
				fmt.Fprintln(out, s)
			} else {
				fmt.Fprintf(out, "%s, exceeds depth limit\n", s.Guess)
			}
			_ = bar.Add(1)
		})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	s := solver.New(p, solver.WithListener(listener), solver.WithLogger(log.Logger))
	t, err := s.Solve(ctx, guesses, answers)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nDone!")
	fmt.Fprintln(out, t.Summary(len(answers)))

	if err := writeStrategy(solveOut, t); err != nil {
		return err
	}
	log.Info().Str("file", solveOut).Int("paths", t.Leaves()).Msg("strategy written")

	if dbPath := firstNonEmpty(solveDB, os.Getenv("DB_PATH")); dbPath != "" {
		rp := store.RunParams{Breadth: p.Breadth, DepthLimit: p.DepthLimit, AnswersOnly: solveAnswersOnly}
		if p.StartingWord != nil {
			rp.StartingWord = p.StartingWord.String()
		}
		if err := recordRun(ctx, dbPath, rp, guesses, answers, t); err != nil {
			return err
		}
	}
	return nil
}

func writeStrategy(path string, t *tree.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := t.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func recordRun(ctx context.Context, dbPath string, rp store.RunParams, guesses, answers []words.Word, t *tree.Tree) error {
	db, err := store.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer db.Close()

	id := store.RunID(rp, guesses, answers)
	if err := store.NewSQLStore(db).Save(ctx, store.NewRun(id, rp, len(answers), len(guesses), t)); err != nil {
		return err
	}
	log.Info().Str("run", id).Str("db", dbPath).Msg("run recorded")
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
