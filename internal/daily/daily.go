// apps/go-solver/internal/daily/daily.go
//
// Deterministic "answer of the day" selection.
// The answer for a date is answers[HMAC-SHA256(salt, YYYY-MM-DD) mod len(answers)],
// so every process sharing a salt and answer list agrees on the day's word.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Answer picks the day's word from answers, which must be non-empty.
func Answer(date time.Time, salt string, answers []words.Word) (words.Word, int) {
	i := WordIndex(date, salt, len(answers))
	return answers[i], i
}
