package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain", in: "crane", want: "crane"},
		{name: "upper and spaces", in: "  CrAnE\n", want: "crane"},
		{name: "too short", in: "cran", wantErr: ErrWordLength},
		{name: "too long", in: "cranes", wantErr: ErrWordLength},
		{name: "digit", in: "cr4ne", wantErr: ErrWordChar},
		{name: "empty", in: "", wantErr: ErrWordLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Parse(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
	assert.NotPanics(t, func() { MustParse("hello") })
}

func TestWordTextRoundTrip(t *testing.T) {
	var w Word
	require.NoError(t, w.UnmarshalText([]byte("Daily")))
	assert.Equal(t, MustParse("daily"), w)
	assert.Error(t, w.UnmarshalText([]byte("day")))
}

func TestDedupe(t *testing.T) {
	in := []Word{MustParse("zesty"), MustParse("apple"), MustParse("zesty"), MustParse("mango")}
	out := Dedupe(in)

	assert.Equal(t, []string{"apple", "mango", "zesty"}, Strings(out))
	assert.Len(t, in, 4, "input must not be modified")
}

func TestGuessPool(t *testing.T) {
	answers := []Word{MustParse("hotel"), MustParse("daily")}
	allowed := []Word{MustParse("silly"), MustParse("hotel")}

	assert.Equal(t, []string{"daily", "hotel"}, Strings(GuessPool(answers, allowed, true)))
	assert.Equal(t, []string{"daily", "hotel", "silly"}, Strings(GuessPool(answers, allowed, false)))
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	lists, err := Load(Source{})
	require.NoError(t, err)

	assert.NotEmpty(t, lists.Answers)
	assert.NotEmpty(t, lists.Allowed)
	assert.Equal(t, lists.Answers, Dedupe(lists.Answers))
	assert.Greater(t, len(lists.Guesses(false)), len(lists.Guesses(true)))
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.txt")
	allowed := filepath.Join(dir, "allowed.txt")
	require.NoError(t, os.WriteFile(answers, []byte("HOTEL\ndaily\nbad\n\n"), 0o644))
	require.NoError(t, os.WriteFile(allowed, []byte("silly\nw0rds\n"), 0o644))

	t.Run("both files", func(t *testing.T) {
		lists, err := Load(Source{AnswersFile: answers, AllowedFile: allowed})
		require.NoError(t, err)
		assert.Equal(t, []string{"daily", "hotel"}, Strings(lists.Answers))
		assert.Equal(t, []string{"silly"}, Strings(lists.Allowed))
	})

	t.Run("allowed only", func(t *testing.T) {
		lists, err := Load(Source{AllowedFile: allowed})
		require.NoError(t, err)
		assert.Equal(t, []string{"silly"}, Strings(lists.Answers))
		assert.Equal(t, lists.Answers, lists.Allowed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(Source{AllowedFile: filepath.Join(dir, "nope.txt")})
		assert.Error(t, err)
	})

	t.Run("no usable answers", func(t *testing.T) {
		empty := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(empty, []byte("toolong\n"), 0o644))
		_, err := Load(Source{AnswersFile: empty, AllowedFile: allowed})
		assert.ErrorIs(t, err, ErrNoAnswers)
	})
}
