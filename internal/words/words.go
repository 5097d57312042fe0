// apps/go-solver/internal/words/words.go
//
// Word representation shared by every solver package.
//
// A Word is exactly five lowercase ASCII letters stored by value, so it can be
// compared with == and used as a map key. Parsing is the only way to build one
// from untrusted text; malformed input is rejected here, before it can reach
// the scorer or the search.

package words

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Len is the number of symbols in every word.
const Len = 5

// Word is a five letter guess or answer.
type Word [Len]byte

var (
	ErrWordLength = errors.New("words: word must be exactly 5 letters")
	ErrWordChar   = errors.New("words: word must contain only letters a-z")
)

// Parse trims and lowercases s and validates it as a Word.
func Parse(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != Len {
		return w, fmt.Errorf("%w: %q", ErrWordLength, s)
	}
	if !isAlpha(s) {
		return w, fmt.Errorf("%w: %q", ErrWordChar, s)
	}
	copy(w[:], s)
	return w, nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseList parses every entry of list, stopping at the first invalid one.
func ParseList(list []string) ([]Word, error) {
	out := make([]Word, 0, len(list))
	for _, s := range list {
		w, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (w Word) String() string { return string(w[:]) }

// MarshalText encodes w as its five letters.
func (w Word) MarshalText() ([]byte, error) { return w[:], nil }

// UnmarshalText decodes a Word with the same rules as Parse.
func (w *Word) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Compare orders words lexicographically by symbol.
func Compare(a, b Word) int { return bytes.Compare(a[:], b[:]) }

// Dedupe returns ws sorted with duplicates removed. The input is not modified.
func Dedupe(ws []Word) []Word {
	out := slices.Clone(ws)
	slices.SortFunc(out, Compare)
	return slices.Compact(out)
}

// Strings renders ws as plain strings.
func Strings(ws []Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
