// apps/go-solver/internal/tree/tree.go
//
// Decision tree produced by the solver.
//
// A node holds the guess to play, the cost statistics of its answer pool, and one
// child per feedback pattern the guess can produce. A node with no children is a
// leaf: its pool has exactly one answer and the guess is that answer. Nodes are
// built bottom-up and never mutated afterwards; a parent exclusively owns its
// children.

package tree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Tree is one node of a guessing strategy.
type Tree struct {
	Guess words.Word

	// TotalGuesses sums, over every answer in this node's pool, the guesses
	// needed to identify it from here.
	TotalGuesses int

	// MaxGuesses is the worst case over the same pool.
	MaxGuesses int

	Children map[feedback.Colors]*Tree
}

// ErrInvariant is returned by Check when a node's statistics are inconsistent.
var ErrInvariant = errors.New("tree: statistics invariant violated")

// Leaf returns the node for a pool of exactly one answer.
func Leaf(answer words.Word) *Tree {
	return &Tree{
		Guess:        answer,
		TotalGuesses: 1,
		MaxGuesses:   1,
	}
}

// NewNode assembles an internal node for guess over a pool of poolSize answers.
//
//	total = poolSize + Σ child.total (all-exact child excluded)
//	max   = 1 + max child.max
func NewNode(guess words.Word, poolSize int, children map[feedback.Colors]*Tree) *Tree {
	t := &Tree{
		Guess:        guess,
		TotalGuesses: poolSize,
		Children:     children,
	}
	for colors, child := range children {
		if colors != feedback.AllExact {
			t.TotalGuesses += child.TotalGuesses
		}
		t.MaxGuesses = max(t.MaxGuesses, child.MaxGuesses+1)
	}
	return t
}

// IsLeaf reports whether no further guess is needed.
func (t *Tree) IsLeaf() bool { return len(t.Children) == 0 }

// Keys returns the child feedback patterns in sorted order.
func (t *Tree) Keys() []feedback.Colors {
	keys := make([]feedback.Colors, 0, len(t.Children))
	for k := range t.Children {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, feedback.Compare)
	return keys
}

// Next follows the branch for the observed colors.
func (t *Tree) Next(colors feedback.Colors) (*Tree, bool) {
	child, ok := t.Children[colors]
	return child, ok
}

// Depth is the number of nodes on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	d := 0
	for _, child := range t.Children {
		d = max(d, child.Depth())
	}
	return d + 1
}

// Leaves counts the leaves below t, which is the size of t's answer pool.
func (t *Tree) Leaves() int {
	if t.IsLeaf() {
		return 1
	}
	n := 0
	for _, child := range t.Children {
		n += child.Leaves()
	}
	return n
}

// Answers lists every answer the strategy identifies, in path order.
func (t *Tree) Answers() []words.Word {
	paths := t.Paths()
	out := make([]words.Word, len(paths))
	for i, p := range paths {
		out[i] = p[len(p)-1]
	}
	return out
}

// Paths enumerates the guess sequence from t to every leaf. Children are
// visited in key order so the enumeration is deterministic.
func (t *Tree) Paths() [][]words.Word {
	var out [][]words.Word
	t.walk(nil, func(path []words.Word) {
		out = append(out, slices.Clone(path))
	})
	return out
}

func (t *Tree) walk(prefix []words.Word, visit func([]words.Word)) {
	path := append(prefix, t.Guess)
	if t.IsLeaf() {
		visit(path)
		return
	}
	for _, k := range t.Keys() {
		t.Children[k].walk(path, visit)
	}
}

// Check verifies the statistic invariants on every node below t.
func (t *Tree) Check() error {
	if t.IsLeaf() {
		if t.TotalGuesses != 1 || t.MaxGuesses != 1 {
			return fmt.Errorf("%w: leaf %s has total %d max %d", ErrInvariant, t.Guess, t.TotalGuesses, t.MaxGuesses)
		}
		return nil
	}
	total, maxChild := t.Leaves(), 0
	for colors, child := range t.Children {
		if err := child.Check(); err != nil {
			return err
		}
		if colors != feedback.AllExact {
			total += child.TotalGuesses
		} else if child.Guess != t.Guess || !child.IsLeaf() {
			return fmt.Errorf("%w: all-exact child of %s is %s", ErrInvariant, t.Guess, child.Guess)
		}
		maxChild = max(maxChild, child.MaxGuesses)
	}
	if t.TotalGuesses != total {
		return fmt.Errorf("%w: %s total %d, want %d", ErrInvariant, t.Guess, t.TotalGuesses, total)
	}
	if t.MaxGuesses != maxChild+1 {
		return fmt.Errorf("%w: %s max %d, want %d", ErrInvariant, t.Guess, t.MaxGuesses, maxChild+1)
	}
	return nil
}
