// Package server runs the HTTP service and owns its lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 30 * time.Second

// Config for the runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Runner serves an http.Handler until its context is canceled.
type Runner struct {
	config   Config
	srv      *http.Server
	listener net.Listener
	logger   *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(cfg Config, handler http.Handler, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Runner{
		config: cfg,
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Listen binds the listening socket. Run calls it when needed; calling it
// first lets the caller learn the bound address.
func (r *Runner) Listen() error {
	if r.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	r.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (r *Runner) Addr() string {
	if r.listener != nil {
		return r.listener.Addr().String()
	}
	return r.config.Addr
}

// Run serves until ctx is canceled, then shuts down gracefully.
// It returns nil on a clean shutdown.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.Listen(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("listening", "addr", r.Addr())
		if err := r.srv.Serve(r.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		r.logger.Info("shutting down", "timeout", r.config.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := r.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
