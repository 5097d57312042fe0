package store

import (
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// runIDLen is the number of digest bytes kept in an ID.
const runIDLen = 16

// RunID digests the inputs that determine a solve's result: breadth, depth
// limit, starting word and both pools as sets. Worker count and pool order do
// not affect the result and are not part of the ID.
func RunID(p RunParams, guesses, answers []words.Word) string {
	h, _ := blake2b.New256(nil) // only fails for keys over 64 bytes
	fmt.Fprintf(h, "breadth=%d\ndepth=%d\nstart=%s\n", p.Breadth, p.DepthLimit, p.StartingWord)
	writeSet(h, "guesses", guesses)
	writeSet(h, "answers", answers)
	return hex.EncodeToString(h.Sum(nil)[:runIDLen])
}

func writeSet(w io.Writer, name string, ws []words.Word) {
	set := words.Dedupe(ws)
	fmt.Fprintf(w, "%s=%d\n", name, len(set))
	for _, word := range set {
		_, _ = w.Write(word[:])
	}
	_, _ = io.WriteString(w, "\n")
}
