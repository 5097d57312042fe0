package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func writeList(t *testing.T, dir, name string, ws ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(ws, "\n")+"\n"), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	solveBreadth, solveAnswersOnly, solveStartingWord, solveWorkers = 0, false, "", 0
	solveOut, solveDB, playStrategy, tokenDays = "out.txt", "", "out.txt", 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolveThenPlay(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORDS_ANSWERS_FILE", writeList(t, dir, "answers.txt", "hotel", "daily", "silly", "hello", "crane"))
	t.Setenv("WORDS_ALLOWED_FILE", writeList(t, dir, "allowed.txt", "roate"))
	t.Setenv("DB_PATH", "")
	strategy := filepath.Join(dir, "out.txt")
	db := filepath.Join(dir, "runs.db")

	out, err := execute(t, "solve", "--out", strategy, "--db", db, "--workers", "2", "-n", "20")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Wordle solver!\n"))
	assert.Contains(t, out, "Done!")

	body, err := os.ReadFile(strategy)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(body)), "\n"), 5)
	_, err = os.Stat(db)
	assert.NoError(t, err)

	out, err = execute(t, "play", "hotel", "--strategy", strategy)
	require.NoError(t, err)
	assert.Contains(t, out, " H  O  T  E  L ")
	assert.Contains(t, out, "ggggg")
	assert.Contains(t, out, "solved in")

	_, err = execute(t, "play", "zzzzz", "--strategy", strategy)
	assert.Error(t, err)
}

func TestSolveForcedStart(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORDS_ANSWERS_FILE", writeList(t, dir, "answers.txt", "hotel", "daily", "silly"))
	t.Setenv("WORDS_ALLOWED_FILE", writeList(t, dir, "allowed.txt", "roate"))
	t.Setenv("DB_PATH", "")
	strategy := filepath.Join(dir, "out.txt")

	out, err := execute(t, "solve", "--out", strategy, "--starting-word", "zzzzz", "--answers-only")
	require.NoError(t, err)
	assert.Contains(t, out, "zzzzz, total: ")

	body, err := os.ReadFile(strategy)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(string(body)), "\n") {
		assert.True(t, strings.HasPrefix(line, "zzzzz,"), line)
	}

	_, err = execute(t, "solve", "--starting-word", "zz")
	assert.Error(t, err)
}

func TestSolverParams(t *testing.T) {
	t.Setenv("SOLVER_BREADTH", "7")
	t.Setenv("SOLVER_WORKERS", "bogus")

	p := solverParams(0, 0)
	assert.Equal(t, 7, p.Breadth)
	assert.Equal(t, solver.DefaultParams().Workers, p.Workers)
	assert.Equal(t, solver.DefaultDepthLimit, p.DepthLimit)

	p = solverParams(3, 2)
	assert.Equal(t, 3, p.Breadth)
	assert.Equal(t, 2, p.Workers)
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	out, err := execute(t, "token", "alice", "--days", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "."))

	t.Setenv("JWT_SECRET", "")
	_, err = execute(t, "token", "alice")
	assert.Error(t, err)
}
