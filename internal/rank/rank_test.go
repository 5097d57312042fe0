package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func parse(t *testing.T, ss ...string) []words.Word {
	t.Helper()
	ws, err := words.ParseList(ss)
	require.NoError(t, err)
	return ws
}

func TestCost(t *testing.T) {
	answers := parse(t, "hotel", "daily")

	// one group of both answers
	assert.Equal(t, 2.0, Cost(words.MustParse("zzzzz"), answers))
	// hits daily outright, hotel alone in the other group
	assert.Equal(t, 0.5, Cost(words.MustParse("daily"), answers))
	// a single answer guessed correctly costs nothing
	assert.Equal(t, 0.0, Cost(words.MustParse("hotel"), parse(t, "hotel")))
}

func TestRankOrderAndTies(t *testing.T) {
	answers := parse(t, "hotel", "daily")
	guesses := parse(t, "zzzzz", "hotel", "daily")

	ranked := Rank(guesses, answers)
	require.Len(t, ranked, 3)
	assert.Equal(t, "daily", ranked[0].Guess.String(), "equal cost falls back to word order")
	assert.Equal(t, "hotel", ranked[1].Guess.String())
	assert.Equal(t, "zzzzz", ranked[2].Guess.String())

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].Cost, ranked[i].Cost)
	}
}

func TestTop(t *testing.T) {
	answers := parse(t, "hotel", "daily", "silly", "hello")
	guesses := parse(t, "zzzzz", "hotel", "daily", "silly", "hello", "lolly")

	assert.Len(t, Top(guesses, answers, 2), 2)
	assert.Len(t, Top(guesses, answers, 100), len(guesses))

	top := Top(guesses, answers, len(guesses))
	assert.NotEqual(t, "zzzzz", top[0].String())
	assert.Equal(t, "zzzzz", top[len(top)-1].String())

	// Rank is deterministic regardless of input order.
	reversed := parse(t, "lolly", "hello", "silly", "daily", "hotel", "zzzzz")
	assert.Equal(t, Rank(guesses, answers), Rank(reversed, answers))
}
