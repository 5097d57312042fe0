// apps/go-solver/internal/feedback/feedback.go
//
// Feedback scoring for a guess against a hidden answer.
// Defines:
//   - Mark: per-letter result (Exact/Present/Absent, rendered g/y/b).
//   - Colors: the five marks of one guess; comparable, used as a map key.
//   - Score: the classic two-pass Wordle algorithm.
//   - Partition: groups an answer pool by the colors a guess would produce.

package feedback

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Mark is the evaluation result for a single letter in a guess.
type Mark byte

const (
	Absent  Mark = 'b' // letter not in the answer (or all copies already used)
	Present Mark = 'y' // letter in the answer at another position
	Exact   Mark = 'g' // letter in the correct position
)

// Colors is the feedback for a whole guess.
type Colors [words.Len]Mark

// AllExact is the feedback of a correct guess.
var AllExact = Colors{Exact, Exact, Exact, Exact, Exact}

// ErrColors is returned by ParseColors for malformed input.
var ErrColors = errors.New("feedback: colors must be 5 of b, y, g")

// Score compares guess against answer.
//
// Pass 1 marks exact matches and counts the answer letters they did not use.
// Pass 2 walks the remaining guess positions left to right; a letter is Present
// while unused copies remain in the answer, Absent otherwise. Repeated letters
// therefore never receive more Exact+Present marks than the answer contains.
func Score(guess, answer words.Word) Colors {
	var res Colors

	// Letter frequency for the non-exact answer positions (a-z).
	var counts [26]int

	for i := 0; i < words.Len; i++ {
		if guess[i] == answer[i] {
			res[i] = Exact
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < words.Len; i++ {
		if res[i] == Exact {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = Present
			counts[j]--
		} else {
			res[i] = Absent
		}
	}
	return res
}

// Won reports whether every mark is Exact.
func (c Colors) Won() bool { return c == AllExact }

func (c Colors) String() string { return string(c[:]) }

// MarshalText encodes c as five of b/y/g.
func (c Colors) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Colors) UnmarshalText(b []byte) error {
	parsed, err := ParseColors(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColors reads a five letter b/y/g string.
func ParseColors(s string) (Colors, error) {
	var c Colors
	if len(s) != words.Len {
		return c, fmt.Errorf("%w: %q", ErrColors, s)
	}
	for i := 0; i < words.Len; i++ {
		switch m := Mark(s[i]); m {
		case Absent, Present, Exact:
			c[i] = m
		default:
			return c, fmt.Errorf("%w: %q", ErrColors, s)
		}
	}
	return c, nil
}

// Compare orders colors by their string representation.
func Compare(a, b Colors) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Group is the subset of an answer pool that produces the same colors.
type Group struct {
	Colors  Colors
	Answers []words.Word
}

// Partition splits answers by Score(guess, answer). Every answer lands in
// exactly one group; groups are sorted by Colors and answers keep input order.
func Partition(guess words.Word, answers []words.Word) []Group {
	index := make(map[Colors]int)
	var groups []Group
	for _, answer := range answers {
		c := Score(guess, answer)
		i, ok := index[c]
		if !ok {
			i = len(groups)
			index[c] = i
			groups = append(groups, Group{Colors: c})
		}
		groups[i].Answers = append(groups[i].Answers, answer)
	}
	slices.SortFunc(groups, func(a, b Group) int { return Compare(a.Colors, b.Colors) })
	return groups
}

// Sizes returns only the group sizes for guess over answers, keyed by colors.
// It allocates no answer slices and is what the ranker uses.
func Sizes(guess words.Word, answers []words.Word, into map[Colors]int) map[Colors]int {
	if into == nil {
		into = make(map[Colors]int)
	} else {
		clear(into)
	}
	for _, answer := range answers {
		into[Score(guess, answer)]++
	}
	return into
}
