package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"

	"github.com/vmunix/moviems/internal/cache"
)

//go:generate mockgen -source=deps.go -destination=mocks/mock_deps.go -package=mocks

// Upstream fetches raw provider payloads. *tmdb.Client implements it.
type Upstream interface {
	// HasPrimaryKey selects the search path: true uses FetchPrimary,
	// false uses FetchFallback.
	HasPrimaryKey() bool
	FetchPrimary(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
	FetchFallback(ctx context.Context, query string) (json.RawMessage, error)
}

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	// Required dependencies
	Upstream Upstream
	Cache    *cache.Cache

	// Optional: defaults to slog.Default()
	Logger *slog.Logger
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Upstream == nil {
		return errors.New("upstream client is required")
	}
	if d.Cache == nil {
		return errors.New("cache is required")
	}
	return nil
}
