package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/tree"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestApplyGuessTransitions(t *testing.T) {
	g := New(words.MustParse("hotel"), 2)
	assert.Equal(t, StatePlaying, g.State())

	colors, state, err := g.ApplyGuess(words.MustParse("silly"))
	require.NoError(t, err)
	assert.Equal(t, "bbybb", colors.String())
	assert.Equal(t, StatePlaying, state)

	_, state, err = g.ApplyGuess(words.MustParse("daily"))
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)

	_, _, err = g.ApplyGuess(words.MustParse("hotel"))
	assert.ErrorIs(t, err, ErrFinished)
	assert.Len(t, g.Guesses, 2)
}

func TestApplyGuessWin(t *testing.T) {
	g := New(words.MustParse("hotel"), 0)
	assert.Equal(t, DefaultRows, g.Rows)

	colors, state, err := g.ApplyGuess(words.MustParse("hotel"))
	require.NoError(t, err)
	assert.True(t, colors.Won())
	assert.Equal(t, StateWon, state)

	turns := g.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, "hotel", turns[0].Guess.String())
}

func TestPlay(t *testing.T) {
	strategy, err := tree.Read(strings.NewReader("daily,hotel\ndaily,silly\ndaily,daily\n"))
	require.NoError(t, err)

	tests := map[string][]string{
		"hotel": {"daily", "hotel"},
		"silly": {"daily", "silly"},
		"daily": {"daily"},
	}
	for answer, want := range tests {
		t.Run(answer, func(t *testing.T) {
			g, err := Play(strategy, words.MustParse(answer))
			require.NoError(t, err)
			assert.True(t, g.Won)
			assert.Equal(t, want, words.Strings(g.Guesses))
		})
	}
}

func TestPlayNotCovered(t *testing.T) {
	strategy, err := tree.Read(strings.NewReader("daily,hotel\ndaily,silly\ndaily,daily\n"))
	require.NoError(t, err)

	// crane scores bybbb against daily, a branch the strategy never built.
	g, err := Play(strategy, words.MustParse("crane"))
	assert.ErrorIs(t, err, ErrNotCovered)
	assert.Len(t, g.Guesses, 1)

	// hello reaches a branch the strategy never built either.
	_, err = Play(strategy, words.MustParse("hello"))
	assert.ErrorIs(t, err, ErrNotCovered)
}
