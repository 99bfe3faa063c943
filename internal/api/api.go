// Package api implements the data service HTTP endpoints.
//
// Every handler follows the same path: build the cache key, return a cached
// value if present, otherwise fetch from upstream, normalize, store and
// respond. Upstream failures are never cached.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vmunix/moviems/internal/media"
)

// Server is the data service API server.
type Server struct {
	deps ServerDeps
	log  *slog.Logger
}

// New creates a new API server with the given dependencies.
func New(deps ServerDeps) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		deps: deps,
		log:  log.With("component", "api"),
	}, nil
}

// RegisterRoutes registers API routes on the given router.
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/search", s.search).Methods(http.MethodGet)
	r.HandleFunc("/movie/{id:[0-9]+}", s.movieDetail).Methods(http.MethodGet)
	r.HandleFunc("/tv/{id:[0-9]+}", s.tvDetail).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errorResponse{Error: errNotFound})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errorResponse{Error: errNotAllowed})
	})
}

// Handler returns the full HTTP handler: routes wrapped in request ID,
// logging and panic recovery middleware.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	s.RegisterRoutes(r)
	return withRequestID(logRequests(recoverPanics(r, s.log), s.log))
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, resp errorResponse) {
	writeJSON(w, code, resp)
}

// pathID extracts a positive integer ID from the route variables.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := mux.Vars(r)[name]
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, idStr, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", name, idStr)
	}
	return id, nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, errorResponse{Error: errMissingQuery})
		return
	}

	searchType := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type")))
	if searchType == "" {
		searchType = defaultSearchType
	}
	if !searchTypes[searchType] {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:  errInvalidType,
			Detail: fmt.Sprintf("type must be one of multi, movie, tv; got %q", searchType),
		})
		return
	}

	key := searchKey(searchType, query)
	if cached, ok := s.deps.Cache.Get(key); ok {
		s.log.Debug("cache hit", "key", key)
		writeJSON(w, http.StatusOK, envelope{Cached: true, Data: cached})
		return
	}

	items, err := s.fetchSearch(r.Context(), searchType, query)
	if err != nil {
		s.log.Warn("search failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, errorResponse{Error: errSearchFailed, Detail: err.Error()})
		return
	}

	s.deps.Cache.Set(key, items)
	writeJSON(w, http.StatusOK, envelope{Cached: false, Data: items})
}

// fetchSearch picks the upstream: TMDB when a key is configured, otherwise
// the fallback catalog.
func (s *Server) fetchSearch(ctx context.Context, searchType, query string) ([]media.SearchResultItem, error) {
	if !s.deps.Upstream.HasPrimaryKey() {
		raw, err := s.deps.Upstream.FetchFallback(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("fallback search: %w", err)
		}
		return media.FallbackResults(raw, query)
	}

	params := url.Values{
		"query": {query},
		"page":  {"1"},
	}
	raw, err := s.deps.Upstream.FetchPrimary(ctx, "/search/"+searchType, params)
	if err != nil {
		return nil, fmt.Errorf("tmdb search: %w", err)
	}
	return media.SearchResults(raw)
}

func (s *Server) movieDetail(w http.ResponseWriter, r *http.Request) {
	s.detail(w, r, media.TypeMovie, func(raw json.RawMessage) (any, error) {
		return media.Movie(raw)
	})
}

func (s *Server) tvDetail(w http.ResponseWriter, r *http.Request) {
	s.detail(w, r, media.TypeTV, func(raw json.RawMessage) (any, error) {
		return media.TV(raw)
	})
}

// detail serves /movie/{id} and /tv/{id}. There is no fallback: without a
// TMDB key every miss fails.
func (s *Server) detail(w http.ResponseWriter, r *http.Request, t media.Type, normalize func(json.RawMessage) (any, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, errorResponse{Error: errNotFound, Detail: err.Error()})
		return
	}

	key := detailKey(t, id)
	if cached, ok := s.deps.Cache.Get(key); ok {
		s.log.Debug("cache hit", "key", key)
		writeJSON(w, http.StatusOK, envelope{Cached: true, Data: cached})
		return
	}

	raw, err := s.deps.Upstream.FetchPrimary(r.Context(), fmt.Sprintf("/%s/%d", t, id), nil)
	if err != nil {
		s.log.Warn("detail fetch failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, errorResponse{Error: errDetailFailed, Detail: err.Error()})
		return
	}

	record, err := normalize(raw)
	if err != nil {
		s.log.Warn("detail normalize failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, errorResponse{Error: errDetailFailed, Detail: err.Error()})
		return
	}

	s.deps.Cache.Set(key, record)
	writeJSON(w, http.StatusOK, envelope{Cached: false, Data: record})
}
