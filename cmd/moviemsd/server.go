package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vmunix/moviems/internal/api"
	"github.com/vmunix/moviems/internal/cache"
	"github.com/vmunix/moviems/internal/config"
	"github.com/vmunix/moviems/internal/server"
	"github.com/vmunix/moviems/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig resolves the config file. With no explicit path it tries the
// discovery order and runs on defaults when nothing is found.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.Discover()
		switch {
		case err == nil:
			path = found
		case errors.Is(err, config.ErrNotFound):
		default:
			return nil, err
		}
	}
	return config.Load(path)
}

// newLogger writes to stdout and, when log.file is set, to a rotated file.
// The returned closer releases the file.
func newLogger(cfg *config.Config, stdout io.Writer) (*slog.Logger, io.Closer) {
	var out io.Writer = stdout
	var closer io.Closer = io.NopCloser(nil)

	if cfg.Log.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		}
		out = io.MultiWriter(stdout, rotator)
		closer = rotator
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	return logger, closer
}

// newHandler wires cache, upstream client and API server.
func newHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	client := tmdb.NewClient(cfg.TMDB.APIKey,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithFallbackURL(cfg.Fallback.URL),
		tmdb.WithLogger(logger),
	)

	srv, err := api.New(api.ServerDeps{
		Upstream: client,
		Cache:    cache.New(cfg.Cache.TTL),
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	return srv.Handler(), nil
}

func runServer(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, logCloser := newLogger(cfg, os.Stdout)
	defer func() { _ = logCloser.Close() }()

	handler, err := newHandler(cfg, logger)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	logger.Info("server starting",
		"addr", addr,
		"mode", cfg.Mode(),
		"cache_ttl", cfg.Cache.TTL,
		"log_level", cfg.Server.LogLevel,
		"log_file", cfg.Log.File,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(server.Config{Addr: addr}, handler, logger.With("component", "server"))
	return runner.Run(ctx)
}
