//go:generate mockgen -destination=mocks/mock_computer.go -package=mocks github.com/agbru/mathsvc/internal/server Computer

// Package server exposes the computation engine over HTTP. It parses path
// integers, forwards them to a Computer and maps error kinds to status
// codes; every computation concern stays in the engine.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/mathsvc/internal/engine"
	apperrors "github.com/agbru/mathsvc/internal/errors"
	"github.com/agbru/mathsvc/internal/logging"
	"github.com/agbru/mathsvc/internal/metrics"
)

// Computer is the engine surface the HTTP adapter needs.
type Computer interface {
	ComputeFibonacci(n int) (string, error)
	ComputeAckermann(m, n int) (string, error)
	ComputeFactorial(n int) (string, error)
	MetricsSnapshot() metrics.Report
	CacheStats() engine.CacheStats
}

// Config holds the HTTP server settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Security        SecurityConfig
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    2 * time.Minute,
		IdleTimeout:     2 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
		Security:        DefaultSecurityConfig(),
	}
}

// Server serves the computation routes.
type Server struct {
	engine     Computer
	cfg        Config
	logger     logging.Logger
	metrics    *Metrics
	handler    http.Handler
	httpServer *http.Server
}

// New builds a Server around c. A nil logger discards logs.
func New(c Computer, cfg Config, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &Server{
		engine:  c,
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
	}
	if err := s.metrics.RegisterEngine(c); err != nil {
		logger.Error("engine collector not registered", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /fibonacci/{n}", s.handleFibonacci)
	mux.HandleFunc("GET /factorial/{n}", s.handleFactorial)
	mux.HandleFunc("GET /ackermann/{m}/{n}", s.handleAckermann)
	mux.HandleFunc("GET /_metrics/", s.handleEngineMetrics)
	mux.HandleFunc("GET /_stats/", s.handleStats)
	mux.HandleFunc("/metrics", s.handleMetrics)

	s.handler = SecurityMiddleware(cfg.Security, s.metricsMiddleware(s.loggingMiddleware(mux.ServeHTTP)))
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return apperrors.WrapError(err, "listen on %s", s.cfg.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", logging.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.WrapError(err, "http server")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return apperrors.WrapError(err, "http shutdown")
		}
		return nil
	})

	return g.Wait()
}
