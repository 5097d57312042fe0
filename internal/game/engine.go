// apps/go-solver/internal/game/engine.go
//
// Game engine used to replay strategies.
// Responsibilities:
//   - Apply guesses against a fixed answer, scoring them with the feedback package.
//   - Track state transitions: playing → won/lost.
//   - Walk a strategy tree for one answer (Play).

package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/tree"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultRows is the number of guesses in a standard game.
const DefaultRows = 6

var (
	ErrFinished   = errors.New("game: finished")
	ErrNotCovered = errors.New("game: answer not covered by strategy")
)

// New starts a game. rows < 1 means DefaultRows.
func New(answer words.Word, rows int) *Game {
	if rows < 1 {
		rows = DefaultRows
	}
	return &Game{Answer: answer, Rows: rows}
}

// ApplyGuess scores guess and records it.
//
// State transitions:
//   - All tiles exact → Finished, Won.
//   - Else if the guesses reach g.Rows → Finished (loss).
func (g *Game) ApplyGuess(guess words.Word) (feedback.Colors, State, error) {
	if g.Finished {
		return feedback.Colors{}, g.State(), ErrFinished
	}
	colors := feedback.Score(guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)
	g.History = append(g.History, colors)

	if colors.Won() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return colors, g.State(), nil
}

func (g *Game) State() State {
	switch {
	case g.Won:
		return StateWon
	case g.Finished:
		return StateLost
	}
	return StatePlaying
}

// Turns returns the guesses with their feedback.
func (g *Game) Turns() []Turn {
	out := make([]Turn, len(g.Guesses))
	for i := range g.Guesses {
		out[i] = Turn{Guess: g.Guesses[i], Colors: g.History[i]}
	}
	return out
}

// Play follows strategy t for answer until it wins or the game is lost.
// Rows is t's depth, so a complete strategy always wins.
func Play(t *tree.Tree, answer words.Word) (*Game, error) {
	g := New(answer, t.Depth())
	node := t
	for {
		colors, state, err := g.ApplyGuess(node.Guess)
		if err != nil {
			return g, err
		}
		if state != StatePlaying {
			if state == StateLost {
				return g, fmt.Errorf("%w: %s", ErrNotCovered, answer)
			}
			return g, nil
		}
		next, ok := node.Next(colors)
		if !ok {
			return g, fmt.Errorf("%w: %s after %s/%s", ErrNotCovered, answer, node.Guess, colors)
		}
		node = next
	}
}
