package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/config"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/repository"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/pkg/logging"
)

// Server wraps the REST API with an HTTP listener
type Server struct {
	logger *logging.Logger
	config config.Config
	repo   repository.JobRepository

	srv       *http.Server
	started   atomic.Bool
	startedAt time.Time
}

// NewServer constructs the marketplace HTTP server
func NewServer(log *logging.Logger, cfg config.Config, repo repository.JobRepository) *Server {
	s := &Server{
		logger:    log,
		config:    cfg,
		repo:      repo,
		startedAt: time.Now(),
	}

	s.srv = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(corsMiddleware(allowedOrigins(s.config.ClientURL)))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", s.handleAllJobs)
		r.Post("/", s.handleAddJob)
		r.Get("/latest", s.handleLatestJobs)
		r.Get("/stats/all", s.handleStats)
		r.Post("/accept", s.handleAcceptJob)
		r.Get("/accepted/{email}", s.handleAcceptedJobsByUser)
		r.Delete("/accepted/{id}", s.handleRemoveAcceptedJob)
		r.Get("/category/{category}", s.handleJobsByCategory)
		r.Get("/my-jobs/{email}", s.handleJobsByUser)
		r.Get("/{id}", s.handleJobByID)
		r.Put("/{id}", s.handleUpdateJob)
		r.Delete("/{id}", s.handleDeleteJob)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "route not found",
			"path":    r.URL.Path,
		})
	})

	return r
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
