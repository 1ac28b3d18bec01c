// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard serves the interactive explorer over HTTP on a local
// port. The cleaned table is loaded once and held immutable; every request
// recomputes its aggregates from the filtered subset, so there is no shared
// mutable state between requests.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/cord-explorer/internal/analyze"
	"github.com/pdiddy/cord-explorer/internal/charts"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Server holds the immutable cleaned table and serves the dashboard.
type Server struct {
	records  []types.Record
	cfg      types.DashboardConfig
	logger   *slog.Logger
	renderer charts.Renderer
	tmpl     *template.Template

	// journalOptions is the top-journal list offered by the filter form,
	// computed once from the full table.
	journalOptions []analyze.LabelCount
}

// New builds a dashboard server over the cleaned records.
func New(records []types.Record, cfg types.DashboardConfig, logger *slog.Logger) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8080"
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = 100
	}

	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("parsing dashboard template: %w", err)
	}

	return &Server{
		records:        records,
		cfg:            cfg,
		logger:         logger.With(slog.String("component", "dashboard")),
		renderer:       charts.NewRenderer(),
		tmpl:           tmpl,
		journalOptions: analyze.TopJournals(records, 10),
	}, nil
}

// Routes assembles the dashboard router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/years", s.handleYears)
		r.Get("/journals", s.handleJournals)
		r.Get("/words", s.handleWords)
		r.Get("/sample", s.handleSample)
	})

	r.Get("/charts/{name}.png", s.handleChart)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", slog.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("dashboard server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down dashboard: %w", err)
	}
	s.logger.Info("dashboard stopped")
	return nil
}

// requestLogger logs each request with method, path, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// filtered parses the request filter and applies it to the table. A filter
// matching nothing is not an error; callers render an empty state.
func (s *Server) filtered(r *http.Request) ([]types.Record, analyze.Filter, error) {
	f, err := ParseFilter(r.URL.Query())
	if err != nil {
		return nil, analyze.Filter{}, err
	}
	if errors.Is(r.Context().Err(), context.Canceled) {
		return nil, f, r.Context().Err()
	}
	return f.Apply(s.records), f, nil
}
