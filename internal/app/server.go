package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const writeTimeoutMargin = 5 * time.Second

// Server wraps http.Server with graceful shutdown capabilities.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	onShutdown      []func(context.Context) error
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithRequestTimeout sizes the write timeout so a request that uses its
// full timeout can still write its response.
func WithRequestTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 && d+writeTimeoutMargin > s.httpServer.WriteTimeout {
			s.httpServer.WriteTimeout = d + writeTimeoutMargin
		}
	}
}

// WithShutdownHook runs fn after the listener has stopped.
func WithShutdownHook(fn func(context.Context) error) ServerOption {
	return func(s *Server) {
		s.onShutdown = append(s.onShutdown, fn)
	}
}

// NewServer creates a new Server instance with optimized settings.
func NewServer(handler http.Handler, port string, opts ...ServerOption) *Server {
	s := &Server{
		httpServer: &http.Server{
			Addr:           ":" + port,
			Handler:        handler,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1MB
		},
		shutdownTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts the server and blocks until ctx is done or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutdown requested, draining connections")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server, then runs the shutdown hooks.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	for _, hook := range s.onShutdown {
		if hookErr := hook(ctx); hookErr != nil {
			log.Error().Err(hookErr).Msg("Shutdown hook failed")
			err = errors.Join(err, hookErr)
		}
	}

	if err == nil {
		log.Info().Msg("Server stopped gracefully")
	}
	return err
}
