package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/NelCSC/grupo-playlist-app/internal/models"
	"github.com/NelCSC/grupo-playlist-app/internal/shared"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Generator is the aggregator boundary the HTTP layer depends on.
// Implemented by [playlist.Generator].
type Generator interface {
	Generate(ctx context.Context, participants []models.Participant) ([]string, error)
}

// Server hosts the playlist generation API.
type Server struct {
	generator Generator
	logger    *log.Logger
	addr      string
}

// New creates a Server for the given generator.
func New(generator Generator, logger *log.Logger, host string, port int) *Server {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Server{
		generator: generator,
		logger:    logger,
		addr:      fmt.Sprintf("%s:%d", host, port),
	}
}

// Router builds the chi router with the full middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(requestLogger(s.logger))

	r.Get("/health", s.handleHealth)
	r.Post("/api/generate-playlist", s.handleGenerate)

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("aggregator listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
