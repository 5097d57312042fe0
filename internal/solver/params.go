package solver

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const (
	// DefaultBreadth is the number of ranked guesses explored per node.
	DefaultBreadth = 20

	// DefaultDepthLimit is the recursion depth at which no more nodes are
	// accepted: the first guess plus six more.
	DefaultDepthLimit = 7
)

// ErrParams is returned for out-of-range parameters.
var ErrParams = errors.New("solver: invalid parameters")

// Params configures a search. It is read-only during Solve.
type Params struct {
	// Breadth caps the ranked guesses explored at each node.
	Breadth int

	// StartingWord, if set, is the only candidate at the root.
	StartingWord *words.Word

	// DepthLimit is the depth at which a branch fails.
	DepthLimit int

	// Workers bounds how many partitions are solved at once near the root.
	// 1 solves everything on the calling goroutine.
	Workers int
}

// DefaultParams returns breadth 20, depth limit 7, one worker per CPU.
func DefaultParams() Params {
	return Params{
		Breadth:    DefaultBreadth,
		DepthLimit: DefaultDepthLimit,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// Validate checks ranges. Workers below 1 are treated as 1 and not an error.
func (p Params) Validate() error {
	if p.Breadth < 1 {
		return fmt.Errorf("%w: breadth %d < 1", ErrParams, p.Breadth)
	}
	if p.DepthLimit < 1 {
		return fmt.Errorf("%w: depth limit %d < 1", ErrParams, p.DepthLimit)
	}
	return nil
}

// WithStartingWord returns a copy of p forcing the first guess.
func (p Params) WithStartingWord(w words.Word) Params {
	p.StartingWord = &w
	return p
}

func (p Params) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "breadth=%d depth=%d workers=%d", p.Breadth, p.DepthLimit, p.Workers)
	if p.StartingWord != nil {
		fmt.Fprintf(&sb, " start=%s", p.StartingWord)
	}
	return sb.String()
}
