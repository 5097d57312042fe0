package solver

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/tree"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Listener receives progress from the root of the search only. Callbacks run on
// the goroutine that called Solve, in candidate order, so they need no locking.
type Listener struct {
	onStart     func(candidates int)
	onCandidate func(guess words.Word)
	onEvaluated func(s tree.Summary, ok bool)
}

func NewListener() *Listener {
	return &Listener{}
}

// OnStart is called once with the number of root candidates.
func (l *Listener) OnStart(f func(candidates int)) *Listener {
	l.onStart = f
	return l
}

// OnCandidate is called before a root candidate is explored.
func (l *Listener) OnCandidate(f func(guess words.Word)) *Listener {
	l.onCandidate = f
	return l
}

// OnEvaluated is called after a root candidate is explored. ok is false when
// the candidate could not fit within the depth limit; s then only carries the guess.
func (l *Listener) OnEvaluated(f func(s tree.Summary, ok bool)) *Listener {
	l.onEvaluated = f
	return l
}

func (l *Listener) start(n int) {
	if l != nil && l.onStart != nil {
		l.onStart(n)
	}
}

func (l *Listener) candidate(g words.Word) {
	if l != nil && l.onCandidate != nil {
		l.onCandidate(g)
	}
}

func (l *Listener) evaluated(s tree.Summary, ok bool) {
	if l != nil && l.onEvaluated != nil {
		l.onEvaluated(s, ok)
	}
}
