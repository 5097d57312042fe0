// apps/go-solver/internal/words/lists.go
//
// Word list loading and guess pool assembly.
//
// Source precedence (same as the game server):
//  1. AnswersFile and AllowedFile both set: answers from the first, allowed guesses from the second.
//  2. Only AllowedFile set: that file is used for both lists.
//  3. Neither set: embedded defaults from the assets package.
//
// Lines that are not five letters a-z are skipped. An empty answer list is an error.

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// ErrNoAnswers is returned when loading yields no usable answer words.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Source names optional files to load word lists from.
type Source struct {
	AnswersFile string
	AllowedFile string
}

// SourceFromEnv reads WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE.
func SourceFromEnv() Source {
	return Source{
		AnswersFile: os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile: os.Getenv("WORDS_ALLOWED_FILE"),
	}
}

// Lists holds the loaded, de-duplicated word lists.
type Lists struct {
	Answers []Word // hidden answer candidates
	Allowed []Word // guess-only words, may overlap Answers
}

// Load reads both lists according to src.
func Load(src Source) (Lists, error) {
	var ansList, allowList []string

	switch {
	case src.AnswersFile != "" && src.AllowedFile != "":
		var err error
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return Lists{}, err
		}
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return Lists{}, err
		}

	case src.AnswersFile == "" && src.AllowedFile != "":
		var err error
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return Lists{}, err
		}
		ansList = allowList

	default:
		var err error
		if ansList, err = assets.AnswersList(); err != nil {
			return Lists{}, err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return Lists{}, err
		}
		ansList, allowList = normalize(ansList), normalize(allowList)
	}

	if len(ansList) == 0 {
		return Lists{}, ErrNoAnswers
	}

	lists := Lists{
		Answers: mustWords(ansList),
		Allowed: mustWords(allowList),
	}
	lists.Answers = Dedupe(lists.Answers)
	lists.Allowed = Dedupe(lists.Allowed)
	return lists, nil
}

// GuessPool assembles the guesses the solver may offer. With answersOnly the
// pool equals the answers; otherwise it is answers ∪ allowed, sorted and unique.
func GuessPool(answers, allowed []Word, answersOnly bool) []Word {
	if answersOnly {
		return Dedupe(answers)
	}
	pool := make([]Word, 0, len(answers)+len(allowed))
	pool = append(pool, answers...)
	pool = append(pool, allowed...)
	return Dedupe(pool)
}

// Guesses is GuessPool over the loaded lists.
func (l Lists) Guesses(answersOnly bool) []Word {
	return GuessPool(l.Answers, l.Allowed, answersOnly)
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == Len && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalize keeps only valid lowercase 5-letter words.
func normalize(list []string) []string {
	var out []string
	for _, line := range list {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == Len && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// mustWords converts pre-validated strings.
func mustWords(list []string) []Word {
	out := make([]Word, len(list))
	for i, s := range list {
		copy(out[i][:], s)
	}
	return out
}
