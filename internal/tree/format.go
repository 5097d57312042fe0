// apps/go-solver/internal/tree/format.go
//
// Text renderings of a strategy.
//   - Summary: one line of statistics ("roate, total: 1234, avg: 3.4, max: 6").
//   - Strategy file: one line per answer, the comma-separated guesses from the
//     root down to the leaf that identifies it, newline-terminated.
//
// Read is the inverse of WriteTo. Feedback keys are not stored in the file; they
// are recomputed by scoring each guess on a line against the line's last word.

package tree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// ErrMalformed is returned by Read for strategy files that do not describe a tree.
var ErrMalformed = errors.New("tree: malformed strategy file")

// Summary is the headline statistics of a node.
type Summary struct {
	Guess words.Word `json:"guess"`
	Total int        `json:"total"`
	Avg   float64    `json:"avg"`
	Max   int        `json:"max"`
}

// Summary reports t's statistics averaged over nAnswers, the size of the
// original answer pool.
func (t *Tree) Summary(nAnswers int) Summary {
	s := Summary{Guess: t.Guess, Total: t.TotalGuesses, Max: t.MaxGuesses}
	if nAnswers > 0 {
		s.Avg = float64(t.TotalGuesses) / float64(nAnswers)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%s, total: %d, avg: %.4f, max: %d", s.Guess, s.Total, s.Avg, s.Max)
}

// WriteTo writes the strategy file for t.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	var err error
	t.walk(nil, func(path []words.Word) {
		if err != nil {
			return
		}
		var m int
		m, err = bw.WriteString(strings.Join(words.Strings(path), ",") + "\n")
		n += int64(m)
	})
	if err != nil {
		return n, err
	}
	return n, bw.Flush()
}

// String returns the strategy file as a string.
func (t *Tree) String() string {
	var sb strings.Builder
	_, _ = t.WriteTo(&sb)
	return sb.String()
}

// builder is the mutable form used while reading a strategy file.
type builder struct {
	guess    words.Word
	leaf     bool
	children map[feedback.Colors]*builder
}

// Read parses a strategy file written by WriteTo.
func Read(r io.Reader) (*Tree, error) {
	var root *builder
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		path, err := words.ParseList(strings.Split(line, ","))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}
		if root == nil {
			root = &builder{guess: path[0]}
		}
		if err := root.insert(path); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrMalformed, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no paths", ErrMalformed)
	}
	return root.build(), nil
}

func (b *builder) insert(path []words.Word) error {
	if path[0] != b.guess {
		return fmt.Errorf("path starts with %s, root is %s", path[0], b.guess)
	}
	answer := path[len(path)-1]
	node := b
	for i := 0; i < len(path)-1; i++ {
		if node.leaf {
			return fmt.Errorf("path continues past leaf %s", node.guess)
		}
		colors := feedback.Score(path[i], answer)
		if colors.Won() && i+1 != len(path)-1 {
			return fmt.Errorf("%s already solved %s", path[i], answer)
		}
		child, ok := node.children[colors]
		if !ok {
			child = &builder{guess: path[i+1]}
			if node.children == nil {
				node.children = make(map[feedback.Colors]*builder)
			}
			node.children[colors] = child
		} else if child.guess != path[i+1] {
			return fmt.Errorf("after %s/%s expected %s, got %s", path[i], colors, child.guess, path[i+1])
		}
		node = child
	}
	if node.leaf || len(node.children) > 0 {
		return fmt.Errorf("answer %s listed twice", answer)
	}
	node.leaf = true
	return nil
}

func (b *builder) build() *Tree {
	if len(b.children) == 0 {
		return Leaf(b.guess)
	}
	children := make(map[feedback.Colors]*Tree, len(b.children))
	pool := 0
	for colors, child := range b.children {
		t := child.build()
		children[colors] = t
		pool += t.Leaves()
	}
	return NewNode(b.guess, pool, children)
}
