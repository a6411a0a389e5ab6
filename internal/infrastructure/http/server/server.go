// Package server provides the HTTP server wiring: router, middleware
// stack and lifecycle
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/infrastructure/config"
	"github.com/mealforge/v1/internal/infrastructure/http/handlers"
	"github.com/mealforge/v1/internal/infrastructure/http/middleware"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, logger *zap.Logger, api *handlers.APIHandler) *Server {
	s := &Server{
		config: cfg,
		logger: logger.Named("http-server"),
	}

	s.router = s.setupRouter(api)
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// setupRouter configures the router with middleware and routes
func (s *Server) setupRouter(api *handlers.APIHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.Logger(s.logger,
		s.config.Monitoring.HealthCheckPath,
		s.config.Monitoring.MetricsPath,
	))

	if s.config.Monitoring.EnableMetrics {
		metrics := middleware.NewMetrics()
		r.Use(metrics.Handler())
		r.Handle(s.config.Monitoring.MetricsPath, promhttp.Handler())
	}

	r.Get(s.config.Monitoring.HealthCheckPath, api.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		api.RegisterRoutes(r)
	})

	return r
}

// Start begins listening for requests
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the router for tests
func (s *Server) Router() http.Handler {
	return s.router
}
