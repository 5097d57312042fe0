// apps/go-solver/internal/game/types.go
//
// Core type definitions for replaying a game.
// Defines:
//   - State: coarse state of a game (playing/won/lost).
//   - Game: a single game against a known answer.

package game

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// State is the coarse state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single game.
type Game struct {
	Answer   words.Word        `json:"answer"`
	Rows     int               `json:"rows"`    // guesses allowed before the game is lost
	Guesses  []words.Word      `json:"guesses"` // in play order
	History  []feedback.Colors `json:"history"` // History[i] scores Guesses[i]
	Finished bool              `json:"finished"`
	Won      bool              `json:"won"`
}

// Turn pairs a guess with its feedback.
type Turn struct {
	Guess  words.Word      `json:"guess"`
	Colors feedback.Colors `json:"colors"`
}
