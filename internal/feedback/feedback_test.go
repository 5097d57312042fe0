package feedback

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestScore(t *testing.T) {
	tests := []struct {
		guess, answer, want string
	}{
		{"silly", "hotel", "bbybb"},
		{"silly", "daily", "bybgg"},
		{"crane", "crane", "ggggg"},
		{"abcde", "fghij", "bbbbb"},
		{"speed", "abide", "bbyby"}, // one e in the answer, two in the guess
		{"eerie", "there", "ybybg"},
		{"llama", "hello", "yybbb"},
		{"mamma", "maxim", "ggybb"},
	}

	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.answer, func(t *testing.T) {
			got := Score(words.MustParse(tt.guess), words.MustParse(tt.answer))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestScoreNeverOvercountsLetters(t *testing.T) {
	pool := []string{"silly", "hotel", "daily", "speed", "abide", "eerie", "there", "llama", "hello", "mamma", "maxim", "sassy", "geese"}
	for _, g := range pool {
		for _, a := range pool {
			guess, answer := words.MustParse(g), words.MustParse(a)
			colors := Score(guess, answer)

			var used, avail [26]int
			for i := 0; i < words.Len; i++ {
				avail[answer[i]-'a']++
				switch colors[i] {
				case Exact:
					assert.Equal(t, guess[i], answer[i], "%s vs %s pos %d", g, a, i)
					used[guess[i]-'a']++
				case Present:
					used[guess[i]-'a']++
				case Absent:
				default:
					t.Fatalf("%s vs %s: invalid mark %q", g, a, colors[i])
				}
			}
			for l := range used {
				assert.LessOrEqual(t, used[l], avail[l], "%s vs %s letter %c", g, a, 'a'+l)
			}
		}
	}
}

func TestParseColors(t *testing.T) {
	c, err := ParseColors("bybgg")
	require.NoError(t, err)
	assert.Equal(t, Colors{Absent, Present, Absent, Exact, Exact}, c)
	assert.False(t, c.Won())
	assert.True(t, AllExact.Won())

	_, err = ParseColors("bybg")
	assert.ErrorIs(t, err, ErrColors)
	_, err = ParseColors("bybgx")
	assert.ErrorIs(t, err, ErrColors)
}

func TestColorsJSON(t *testing.T) {
	c := Colors{Absent, Present, Absent, Exact, Exact}
	b, err := json.Marshal(map[string]Colors{"colors": c})
	require.NoError(t, err)
	assert.JSONEq(t, `{"colors":"bybgg"}`, string(b))

	var back map[string]Colors
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, c, back["colors"])

	var bad Colors
	assert.ErrorIs(t, json.Unmarshal([]byte(`"bybgx"`), &bad), ErrColors)
}

func TestCompare(t *testing.T) {
	a, err := ParseColors("bbbbg")
	require.NoError(t, err)
	b, err := ParseColors("bbbgb")
	require.NoError(t, err)
	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
	assert.Zero(t, Compare(a, a))
	assert.Equal(t, a.String() < b.String(), Compare(a, b) < 0)
}

func TestPartitionIsComplete(t *testing.T) {
	answers, err := words.ParseList([]string{"hotel", "daily", "silly", "sassy", "hello", "llama", "crane", "trace"})
	require.NoError(t, err)

	for _, guess := range answers {
		groups := Partition(guess, answers)

		seen := map[words.Word]int{}
		for i, g := range groups {
			require.NotEmpty(t, g.Answers)
			if i > 0 {
				assert.Negative(t, Compare(groups[i-1].Colors, g.Colors), "groups must be sorted and distinct")
			}
			for _, a := range g.Answers {
				assert.Equal(t, g.Colors, Score(guess, a))
				seen[a]++
			}
		}
		assert.Len(t, seen, len(answers))
		for a, n := range seen {
			assert.Equal(t, 1, n, "answer %s in %d groups", a, n)
		}

		sizes := Sizes(guess, answers, nil)
		assert.Len(t, sizes, len(groups))
		for _, g := range groups {
			assert.Equal(t, len(g.Answers), sizes[g.Colors])
		}
	}
}

func TestSizesReusesMap(t *testing.T) {
	answers := []words.Word{words.MustParse("hotel"), words.MustParse("daily")}
	m := map[Colors]int{AllExact: 99}
	got := Sizes(words.MustParse("daily"), answers, m)
	assert.Equal(t, 1, got[AllExact])
	assert.Len(t, got, 2)
}
