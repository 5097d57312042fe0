// Package rank orders guesses by how much they are expected to narrow an answer pool.
package rank

import (
	"cmp"
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Candidate is a guess with its heuristic cost. Lower is better.
type Candidate struct {
	Guess words.Word
	Cost  float64
}

// Cost is the average size of the groups guess splits answers into, not
// counting the answer it would hit outright:
//
//	(|answers| - |all-exact group|) / number of distinct groups
func Cost(guess words.Word, answers []words.Word) float64 {
	return cost(feedback.Sizes(guess, answers, nil), len(answers))
}

func cost(sizes map[feedback.Colors]int, n int) float64 {
	n -= sizes[feedback.AllExact]
	return float64(n) / float64(len(sizes))
}

// Rank scores every guess against answers and returns them best first.
// Equal costs are ordered by word so the result is reproducible.
func Rank(guesses, answers []words.Word) []Candidate {
	out := make([]Candidate, len(guesses))
	sizes := make(map[feedback.Colors]int)
	for i, g := range guesses {
		sizes = feedback.Sizes(g, answers, sizes)
		out[i] = Candidate{Guess: g, Cost: cost(sizes, len(answers))}
	}
	slices.SortFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(a.Cost, b.Cost); c != 0 {
			return c
		}
		return words.Compare(a.Guess, b.Guess)
	})
	return out
}

// Top returns the n best guesses, or all of them when n exceeds the pool.
func Top(guesses, answers []words.Word, n int) []words.Word {
	ranked := Rank(guesses, answers)
	n = min(n, len(ranked))
	out := make([]words.Word, n)
	for i := range out {
		out[i] = ranked[i].Guess
	}
	return out
}
