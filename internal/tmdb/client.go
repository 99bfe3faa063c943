package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// DefaultFallbackURL is a public, unauthenticated, movie-only film catalog.
	DefaultFallbackURL = "https://ghibliapi.vercel.app/films"

	requestTimeout = 10 * time.Second
	maxBodySize    = 8 << 20
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// Client talks to TMDB, or to the fallback catalog when no key is configured.
// It never retries; every failure is returned to the caller as a *FetchError.
type Client struct {
	apiKey      string
	baseURL     string
	fallbackURL string
	httpClient  *http.Client
	log         *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom TMDB base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithFallbackURL sets the fallback catalog endpoint.
func WithFallbackURL(url string) Option {
	return func(c *Client) {
		c.fallbackURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// NewClient creates a new client. An empty apiKey puts it in fallback mode.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:      apiKey,
		baseURL:     DefaultBaseURL,
		fallbackURL: DefaultFallbackURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasPrimaryKey reports whether TMDB credentials are configured.
func (c *Client) HasPrimaryKey() bool {
	return c.apiKey != ""
}

// FetchPrimary issues GET baseURL+path with params plus the API key and
// returns the raw JSON body.
func (c *Client) FetchPrimary(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = append([]string(nil), v...)
	}
	display := c.baseURL + path
	if len(q) > 0 {
		display += "?" + q.Encode()
	}
	q.Set("api_key", c.apiKey)

	return c.get(ctx, c.baseURL+path+"?"+q.Encode(), display)
}

// FetchFallback issues GET against the fallback catalog. The query is passed
// along as "q"; callers must still filter the result themselves.
func (c *Client) FetchFallback(ctx context.Context, query string) (json.RawMessage, error) {
	u, err := url.Parse(c.fallbackURL)
	if err != nil {
		return nil, &FetchError{URL: c.fallbackURL, Err: fmt.Errorf("parse fallback url: %w", err)}
	}
	if query != "" {
		q := u.Query()
		q.Set("q", query)
		u.RawQuery = q.Encode()
	}
	return c.get(ctx, u.String(), u.String())
}

// get performs the request. display is the URL as it may appear in errors and
// logs, without credentials.
func (c *Client) get(ctx context.Context, rawURL, display string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: display, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error embeds the full URL, including api_key
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = display
		}
		return nil, &FetchError{URL: display, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if c.log != nil {
		c.log.Debug("upstream request",
			"url", display,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &FetchError{
			URL:        display,
			StatusCode: resp.StatusCode,
			Err:        ErrUpstreamStatus,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &FetchError{URL: display, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if !json.Valid(body) {
		return nil, &FetchError{URL: display, StatusCode: resp.StatusCode, Err: errInvalidJSON}
	}

	return json.RawMessage(body), nil
}
