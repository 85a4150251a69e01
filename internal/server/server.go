package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/transit-catalog/subway/internal/config"
	"github.com/transit-catalog/subway/internal/logger"
	"github.com/transit-catalog/subway/internal/metrics"
	"github.com/transit-catalog/subway/internal/server/handlers"
	"github.com/transit-catalog/subway/internal/server/middleware"
	"github.com/transit-catalog/subway/internal/subway"
	"github.com/transit-catalog/subway/internal/version"
)

type Server struct {
	store    subway.Store
	config   *config.ServerEnvironment
	logger   *slog.Logger
	router   *chi.Mux
	lines    *subway.LineService
	stations *subway.StationService
}

func NewServer(
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
	store subway.Store,
) *Server {
	server := &Server{
		store:    store,
		config:   cfg,
		logger:   logger,
		router:   chi.NewRouter(),
		lines:    subway.NewLineService(store, store),
		stations: subway.NewStationService(store),
	}

	if cfg.MetricsEnabled {
		metrics.Init()
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server
}

// Handler returns the router, for use with httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// Stations returns the station service (used to seed stations at startup)
func (s *Server) Stations() *subway.StationService {
	return s.stations
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	if s.config.RequestTimeout > 0 {
		s.router.Use(chimiddleware.Timeout(s.config.RequestTimeout))
	}
	s.router.Use(middleware.SecurityHeaders(s.config.Environment))
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
	if s.config.MetricsEnabled {
		s.router.Use(middleware.Metrics)
	}
}

func (s *Server) registerRoutes() {
	s.router.Get("/health/live", handlers.HandleHealth)
	s.router.Get("/health/ready", handlers.HandleReadiness(s.store))
	s.router.Get("/version", handlers.HandleVersion(version.Get()))

	if s.config.MetricsEnabled {
		s.router.Handle("/metrics", metrics.Handler())
	}

	stationHandler := handlers.NewStationHandler(s.stations)
	s.router.Route("/stations", func(r chi.Router) {
		r.Use(middleware.RequestSizeLimit(s.config.MaxRequestBodySize))
		r.Post("/", stationHandler.HandleCreateStation)
		r.Get("/", stationHandler.HandleListStations)
		r.Get("/{stationID}", stationHandler.HandleGetStation)
		r.Delete("/{stationID}", stationHandler.HandleDeleteStation)
	})

	lineHandler := handlers.NewLineHandler(s.lines)
	s.router.Route("/lines", func(r chi.Router) {
		r.Use(middleware.RequestSizeLimit(s.config.MaxRequestBodySize))
		r.Post("/", lineHandler.HandleCreateLine)
		r.Get("/", lineHandler.HandleListLines)
		r.Get("/{lineID}", lineHandler.HandleGetLine)
		r.Patch("/{lineID}", lineHandler.HandleUpdateLine)
		r.Delete("/{lineID}", lineHandler.HandleDeleteLine)
	})

	if s.config.ResetEnabled() {
		s.router.Post("/admin/reset", handlers.HandleReset(s.store))
	}
}

func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("store_backend", s.config.StoreBackend),
			slog.String("address", serverAddr))

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

func (s *Server) DatabaseShutdown() {
	if s.store != nil {
		s.store.Close()
		s.logger.Info("store connection closed")
	}
}
