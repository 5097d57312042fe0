// apps/go-solver/internal/solver/solver.go
//
// Bounded best-first search for a guessing strategy.
//
// At every node the solver ranks the guess pool against the remaining answers,
// keeps the top Breadth guesses, and for each one partitions the answers by the
// feedback it would produce and solves every partition recursively. The guess
// whose subtree has the smallest total wins; the first one wins a tie. A branch
// that reaches DepthLimit without isolating an answer fails, and a node fails
// when all of its candidates do.
//
// Partitions at depth 0 and 1 are solved concurrently (see fanout.go); below
// that everything runs on the goroutine that reached the node.

package solver

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/rank"
	"github.com/robalobadob/wordle/apps/go-solver/internal/tree"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var (
	ErrEmptyPool = errors.New("solver: answer and guess pools must be non-empty")
	ErrExhausted = errors.New("solver: no strategy found within depth bound")
)

// Option configures a Solver.
type Option func(*Solver)

// WithListener reports root-level progress to l.
func WithListener(l *Listener) Option {
	return func(s *Solver) { s.listener = l }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// Solver searches for strategies. A Solver may run several Solve calls at once;
// each call gets its own worker budget.
type Solver struct {
	params   Params
	listener *Listener
	log      zerolog.Logger
	calls    atomic.Int64
}

func New(params Params, opts ...Option) *Solver {
	if params.Workers < 1 {
		params.Workers = 1
	}
	s := &Solver{params: params, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Params returns the parameters the solver was built with.
func (s *Solver) Params() Params { return s.params }

// Calls is the number of nodes visited by the most recently finished Solve.
func (s *Solver) Calls() int64 { return s.calls.Load() }

// Solve builds the cheapest strategy it can find that identifies every answer
// using words from guesses. It returns ErrExhausted if no candidate at the root
// fits within the depth limit, and ctx.Err() if ctx is cancelled first.
func (s *Solver) Solve(ctx context.Context, guesses, answers []words.Word) (*tree.Tree, error) {
	if len(guesses) == 0 || len(answers) == 0 {
		return nil, ErrEmptyPool
	}
	if err := s.params.Validate(); err != nil {
		return nil, err
	}

	sr := &search{
		ctx:      ctx,
		params:   s.params,
		guesses:  guesses,
		listener: s.listener,
		log:      s.log,
		// The caller is one worker; the channel admits the rest.
		sem: make(chan struct{}, s.params.Workers-1),
	}

	start := time.Now()
	s.log.Info().
		Int("answers", len(answers)).
		Int("guesses", len(guesses)).
		Stringer("params", s.params).
		Msg("solve started")

	t, err := sr.solve(0, answers)
	s.calls.Store(sr.calls.Load())

	if err != nil {
		s.log.Warn().Err(err).
			Int64("calls", sr.calls.Load()).
			Dur("took", time.Since(start)).
			Msg("solve failed")
		return nil, err
	}
	s.log.Info().
		Stringer("root", t.Guess).
		Int("total", t.TotalGuesses).
		Int("max", t.MaxGuesses).
		Int64("calls", sr.calls.Load()).
		Dur("took", time.Since(start)).
		Msg("solve finished")
	return t, nil
}

// search is the state shared by one Solve call.
type search struct {
	ctx      context.Context
	params   Params
	guesses  []words.Word
	listener *Listener
	log      zerolog.Logger
	sem      chan struct{}
	calls    atomic.Int64
}

func (sr *search) solve(depth int, answers []words.Word) (*tree.Tree, error) {
	if err := sr.ctx.Err(); err != nil {
		return nil, err
	}
	sr.calls.Add(1)

	if depth >= sr.params.DepthLimit {
		return nil, ErrExhausted
	}
	if len(answers) == 1 {
		return tree.Leaf(answers[0]), nil
	}

	candidates := sr.candidates(depth, answers)
	root := depth == 0
	if root {
		sr.listener.start(len(candidates))
	}

	var best *tree.Tree
	for _, guess := range candidates {
		if root {
			sr.listener.candidate(guess)
		}
		t, err := sr.expand(depth, guess, answers)
		switch {
		case errors.Is(err, ErrExhausted):
			if root {
				sr.log.Debug().Stringer("guess", guess).Msg("candidate exceeds depth limit")
				sr.listener.evaluated(tree.Summary{Guess: guess}, false)
			}
			continue
		case err != nil:
			return nil, err
		}
		if root {
			sum := t.Summary(len(answers))
			sr.log.Debug().Stringer("guess", guess).Int("total", sum.Total).Int("max", sum.Max).Msg("candidate evaluated")
			sr.listener.evaluated(sum, true)
		}
		if best == nil || t.TotalGuesses < best.TotalGuesses {
			best = t
		}
	}
	if best == nil {
		// A cancelled context can surface as exhaustion in a worker; prefer the real cause.
		if err := sr.ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrExhausted
	}
	return best, nil
}

// candidates returns the guesses to try at a node. A guess that leaves every
// answer in one non-winning group is dropped: its subtree re-solves the same pool
// one level deeper, so it can never beat a sibling and can only fail.
func (sr *search) candidates(depth int, answers []words.Word) []words.Word {
	if depth == 0 && sr.params.StartingWord != nil {
		return []words.Word{*sr.params.StartingWord}
	}
	top := rank.Top(sr.guesses, answers, sr.params.Breadth)
	return slices.DeleteFunc(top, func(g words.Word) bool {
		return uninformative(g, answers)
	})
}

func uninformative(guess words.Word, answers []words.Word) bool {
	first := feedback.Score(guess, answers[0])
	if first.Won() {
		return false
	}
	for _, a := range answers[1:] {
		if feedback.Score(guess, a) != first {
			return false
		}
	}
	return true
}

// expand builds the node for guess over answers. Every group is solved,
// including the one the guess itself wins, which becomes a leaf.
func (sr *search) expand(depth int, guess words.Word, answers []words.Word) (*tree.Tree, error) {
	groups := feedback.Partition(guess, answers)
	subtrees := make([]*tree.Tree, len(groups))

	var err error
	if depth <= parallelDepth {
		err = sr.fanOut(depth+1, groups, subtrees)
	} else {
		err = sr.sequential(depth+1, groups, subtrees)
	}
	if err != nil {
		return nil, err
	}

	children := make(map[feedback.Colors]*tree.Tree, len(groups))
	for i, g := range groups {
		children[g.Colors] = subtrees[i]
	}
	return tree.NewNode(guess, len(answers), children), nil
}
