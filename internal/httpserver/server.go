// apps/go-solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver API.
// Responsibilities:
//   - Router + middleware (request IDs, access log, timeouts, panic recovery, JSON).
//   - Public endpoints: "/", "/health".
//   - POST /solve (bearer token when a secret is configured), cached by run ID.
//   - Read-only run endpoints under /runs (see routes_runs.go).
//
// Notes:
//   - Identical concurrent solves share one search. It runs under its own
//     Timeout deadline, so one waiter leaving does not cancel it for the rest.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Config carries the server's dependencies.
type Config struct {
	Lists     words.Lists   // default pools for /solve
	Store     store.Store   // finished runs
	Params    solver.Params // defaults; requests may override breadth and starting word
	JWTSecret string        // empty leaves /solve open
	DailySalt string
	Timeout   time.Duration // per request; 0 means 10s
	Logger    *zerolog.Logger
}

// Server bundles the router and its dependencies.
type Server struct {
	r      *chi.Mux
	cfg    Config
	log    zerolog.Logger
	solves singleflight.Group
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg Config) *Server {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	s := &Server{r: chi.NewRouter(), cfg: cfg, log: logger}

	// --- middleware ---
	s.r.Use(chimw.RequestID)            // add X-Request-ID
	s.r.Use(chimw.RealIP)               // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(s.log))     // request-scoped logger
	s.r.Use(accessLog)                  // one line per request
	s.r.Use(chimw.Recoverer)            // recover from panics
	s.r.Use(chimw.Timeout(cfg.Timeout)) // bound handler time
	s.r.Use(jsonContentType)            // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solve","/runs"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"answers": len(cfg.Lists.Answers),
			"allowed": len(cfg.Lists.Allowed),
		})
	})

	// Solving is the only expensive call, so it is the only gated one.
	s.r.With(requireToken(cfg.JWTSecret)).Post("/solve", s.handleSolve)

	s.mountRuns(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("took", d).
		Msg("request")
})

// httpError writes {"error": code} with status.
func httpError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
