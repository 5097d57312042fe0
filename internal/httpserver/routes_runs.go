// apps/go-solver/internal/httpserver/routes_runs.go
//
// HTTP routes for solving and inspecting runs.
//   - POST /solve                    → solve (or fetch the cached run) for the given pools
//   - GET  /runs                     → newest runs first (?limit=N)
//   - GET  /runs/{id}                → one run's summary
//   - GET  /runs/{id}/strategy       → the strategy file as text
//   - GET  /runs/{id}/play/{answer}  → replay the strategy against an answer
//   - GET  /runs/{id}/daily          → replay it against today's answer
//
// Today's answer is drawn from the run's own answer pool with the date + salt
// selection in the daily package.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"golang.org/x/sync/singleflight"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/tree"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// mountRuns registers all /runs routes.
func (s *Server) mountRuns(r chi.Router) {
	r.Route("/runs", func(r chi.Router) {
		r.Get("/", s.handleListRuns)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetRun)
			r.Get("/strategy", s.handleStrategy)
			r.Get("/play/{answer}", s.handlePlay)
			r.Get("/daily", s.handleDaily)
		})
	})
}

// -----------------------------------------------------------------------------
// POST /solve

// solveReq is the request payload for /solve. Every field is optional.
type solveReq struct {
	Breadth      int      `json:"breadth"`      // 0 keeps the server default
	AnswersOnly  bool     `json:"answersOnly"`  // guess only from the answers
	StartingWord string   `json:"startingWord"` // force the first guess
	Answers      []string `json:"answers"`      // replaces the default answer list
	Guesses      []string `json:"guesses"`      // replaces the default allowed list
}

// runRes is returned by /solve and /runs/{id}.
type runRes struct {
	*store.Run
	Cached bool `json:"cached"`
}

// handleSolve resolves the pools and parameters, then returns the run for them.
// - Malformed words or parameters → 400.
// - No strategy within the depth limit → 422.
// - Shared search ran past its deadline → 503.
// - Request deadline → 504 from the timeout middleware; client gone → nothing.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}

	answers, allowed := s.cfg.Lists.Answers, s.cfg.Lists.Allowed
	var err error
	if len(req.Answers) > 0 {
		if answers, err = words.ParseList(req.Answers); err != nil {
			httpError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if len(req.Guesses) > 0 {
		if allowed, err = words.ParseList(req.Guesses); err != nil {
			httpError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	answers = words.Dedupe(answers)
	guesses := words.GuessPool(answers, allowed, req.AnswersOnly)

	p := s.cfg.Params
	p.StartingWord = nil
	if req.Breadth != 0 {
		p.Breadth = req.Breadth
	}
	if req.StartingWord != "" {
		start, err := words.Parse(req.StartingWord)
		if err != nil {
			httpError(w, http.StatusBadRequest, err.Error())
			return
		}
		p = p.WithStartingWord(start)
	}
	if err := p.Validate(); err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	rp := store.RunParams{
		Breadth:     p.Breadth,
		DepthLimit:  p.DepthLimit,
		AnswersOnly: req.AnswersOnly,
	}
	if p.StartingWord != nil {
		rp.StartingWord = p.StartingWord.String()
	}
	id := store.RunID(rp, guesses, answers)

	if run, err := s.cfg.Store.Get(r.Context(), id); err == nil {
		_ = json.NewEncoder(w).Encode(runRes{Run: run, Cached: true})
		return
	}

	// The shared search belongs to no single request: it keeps the first
	// caller's values but not its cancellation, and gets its own deadline.
	logger := hlog.FromRequest(r).With().Str("run", id).Str("subject", subject(r)).Logger()
	base := context.WithoutCancel(r.Context())
	ch := s.solves.DoChan(id, func() (any, error) {
		ctx, cancel := context.WithTimeout(base, s.cfg.Timeout)
		defer cancel()
		t, err := solver.New(p, solver.WithLogger(logger)).Solve(ctx, guesses, answers)
		if err != nil {
			return nil, err
		}
		run := store.NewRun(id, rp, len(answers), len(guesses), t)
		if err := s.cfg.Store.Save(ctx, run); err != nil {
			logger.Warn().Err(err).Msg("save run")
		}
		return run, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-r.Context().Done():
	}
	if r.Context().Err() != nil {
		// Client gone or the timeout middleware already answers 504.
		return
	}
	switch err := res.Err; {
	case errors.Is(err, solver.ErrExhausted):
		httpError(w, http.StatusUnprocessableEntity, "exhausted")
		return
	case errors.Is(err, solver.ErrEmptyPool):
		httpError(w, http.StatusBadRequest, "empty_pool")
		return
	case errors.Is(err, context.DeadlineExceeded):
		httpError(w, http.StatusServiceUnavailable, "timeout")
		return
	case err != nil:
		logger.Error().Err(err).Msg("solve")
		httpError(w, http.StatusInternalServerError, "solve_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(runRes{Run: res.Val.(*store.Run), Cached: res.Shared})
}

// -----------------------------------------------------------------------------
// /runs

// handleListRuns returns up to ?limit= runs (default 20), newest first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httpError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}
	runs, err := s.cfg.Store.List(r.Context(), limit)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("list runs")
		httpError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if runs == nil {
		runs = []*store.Run{}
	}
	_ = json.NewEncoder(w).Encode(runs)
}

// loadRun fetches the {id} run, writing 404 if it is missing.
func (s *Server) loadRun(w http.ResponseWriter, r *http.Request) (*store.Run, bool) {
	run, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpError(w, http.StatusNotFound, "run_not_found")
		return nil, false
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("get run")
		httpError(w, http.StatusInternalServerError, "server_error")
		return nil, false
	}
	return run, true
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.loadRun(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(runRes{Run: run, Cached: true})
}

func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	run, ok := s.loadRun(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, run.Strategy)
}

// playRes is returned by the replay endpoints.
type playRes struct {
	Date    string      `json:"date,omitempty"`
	Answer  words.Word  `json:"answer"`
	Turns   []game.Turn `json:"turns"`
	Won     bool        `json:"won"`
	Guesses int         `json:"guesses"`
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	answer, err := words.Parse(chi.URLParam(r, "answer"))
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, ok := s.loadTree(w, r)
	if !ok {
		return
	}
	replay(w, t, answer, "")
}

// handleDaily replays the run against today's answer.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTree(w, r)
	if !ok {
		return
	}
	now := time.Now()
	answer, _ := daily.Answer(now, s.cfg.DailySalt, words.Dedupe(t.Answers()))
	replay(w, t, answer, daily.DateKey(now))
}

// loadTree fetches the {id} run and rebuilds its strategy.
func (s *Server) loadTree(w http.ResponseWriter, r *http.Request) (*tree.Tree, bool) {
	run, ok := s.loadRun(w, r)
	if !ok {
		return nil, false
	}
	t, err := run.Tree()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("run", run.ID).Msg("read strategy")
		httpError(w, http.StatusInternalServerError, "bad_strategy")
		return nil, false
	}
	return t, true
}

func replay(w http.ResponseWriter, t *tree.Tree, answer words.Word, date string) {
	g, err := game.Play(t, answer)
	if errors.Is(err, game.ErrNotCovered) {
		httpError(w, http.StatusNotFound, "answer_not_covered")
		return
	}
	if err != nil {
		httpError(w, http.StatusInternalServerError, "replay_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(playRes{
		Date:    date,
		Answer:  answer,
		Turns:   g.Turns(),
		Won:     g.Won,
		Guesses: len(g.Guesses),
	})
}
