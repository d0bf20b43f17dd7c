// Package server exposes a word-ladder index over HTTP.
//
// One [ladder.Index] is shared by every request, so distances found for one
// client are cache hits for the next. Whole-dictionary results go through a
// [pipeline.Runner] and its cache.
//
// # Routes
//
//	GET /healthz
//	GET /v1/neighbors/{word}[?all=true]
//	GET /v1/distance?from=&to=[&path=true]
//	GET /v1/paths?start=[&depth=]
//	GET /v1/components
//	GET /v1/graph[?format=json|dot|svg]
//	GET /v1/stats
//
// Responses are JSON. Invalid input answers 400 with {"error": CODE,
// "message": text}; every response carries an X-Request-ID header.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/wordladder/pkg/ladder"
	"github.com/matzehuels/wordladder/pkg/pipeline"
)

// DefaultMaxDepth bounds /v1/paths when no limit is configured.
const DefaultMaxDepth = 12

// Options configures a Server.
type Options struct {
	// MaxDepth caps the depth parameter of /v1/paths. Zero uses DefaultMaxDepth.
	MaxDepth int

	// RequestTimeout bounds each request. Zero disables the limit.
	RequestTimeout time.Duration
}

// Server serves ladder queries over HTTP.
type Server struct {
	ix     *ladder.Index
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
}

// New creates a server for ix. A nil runner disables result caching.
func New(ix *ladder.Index, runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Server{ix: ix, runner: runner, logger: logger, opts: opts}
}

// Router returns the HTTP handler with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(s.logRequests)
	if s.opts.RequestTimeout > 0 {
		r.Use(timeout(s.opts.RequestTimeout))
	}

	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/neighbors/{word}", s.neighbors)
		r.Get("/distance", s.distance)
		r.Get("/paths", s.paths)
		r.Get("/components", s.components)
		r.Get("/graph", s.graph)
		r.Get("/stats", s.stats)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "words", s.ix.Dictionary().Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
