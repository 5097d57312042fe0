package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/tree"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// tile colors, as in the web game
var tileColors = map[feedback.Mark]string{
	feedback.Absent:  "#3a3a3c",
	feedback.Present: "#b59f3b",
	feedback.Exact:   "#538d4e",
}

func runPlay(cmd *cobra.Command, args []string) error {
	answer, err := words.Parse(args[0])
	if err != nil {
		return err
	}

	f, err := os.Open(playStrategy)
	if err != nil {
		return err
	}
	t, err := tree.Read(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", playStrategy, err)
	}

	out := termenv.NewOutput(cmd.OutOrStdout())
	g, err := game.Play(t, answer)
	printTurns(out, g.Turns())
	if errors.Is(err, game.ErrNotCovered) {
		return fmt.Errorf("%s is not covered by %s", answer, playStrategy)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "solved in %d\n", len(g.Guesses))
	return nil
}

func printTurns(out *termenv.Output, turns []game.Turn) {
	for _, turn := range turns {
		for i, m := range turn.Colors {
			tile := out.String(" " + string(turn.Guess[i]-'a'+'A') + " ").
				Foreground(out.Color("#ffffff")).
				Background(out.Color(tileColors[m])).
				Bold()
			fmt.Fprint(out, tile)
		}
		// Plain-text terminals still see the pattern.
		if out.Profile == termenv.Ascii {
			fmt.Fprintf(out, "  %s", turn.Colors)
		}
		fmt.Fprintln(out)
	}
}
