// apps/go-solver/internal/store/store.go
//
// Persistence of finished solver runs.
//
// A run is keyed by RunID, a digest of everything that determines its result, so
// a stored run can answer any later request with the same inputs. Two
// implementations are provided: an in-memory map (memory.go) and SQLite
// (sqlite.go).

package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/tree"
)

// ErrNotFound is returned by Get for unknown run IDs.
var ErrNotFound = errors.New("store: run not found")

// RunParams are the solver inputs recorded with a run.
type RunParams struct {
	Breadth      int    `json:"breadth"`
	DepthLimit   int    `json:"depthLimit"`
	StartingWord string `json:"startingWord,omitempty"`
	AnswersOnly  bool   `json:"answersOnly"`
}

// Run is one finished solve.
type Run struct {
	ID        string       `json:"id"`
	Params    RunParams    `json:"params"`
	Answers   int          `json:"answers"` // answer pool size
	Guesses   int          `json:"guesses"` // guess pool size
	Summary   tree.Summary `json:"summary"`
	Strategy  string       `json:"-"` // strategy file text
	CreatedAt time.Time    `json:"createdAt"`
}

// NewRun records t as the result of solving with p.
func NewRun(id string, p RunParams, answers, guesses int, t *tree.Tree) *Run {
	return &Run{
		ID:        id,
		Params:    p,
		Answers:   answers,
		Guesses:   guesses,
		Summary:   t.Summary(answers),
		Strategy:  t.String(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Tree rebuilds the strategy.
func (r *Run) Tree() (*tree.Tree, error) {
	return tree.Read(strings.NewReader(r.Strategy))
}

// Store defines the persistence interface for runs.
type Store interface {
	// Save persists a run. Saving an ID that already exists keeps the first copy.
	Save(ctx context.Context, r *Run) error

	// Get retrieves a run by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns up to limit runs, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*Run, error)
}
