package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/moviems/internal/media"
)

const requestTimeout = 8 * time.Second

// Client wraps HTTP calls to the moviems data service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new data service client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Response envelopes (mirror the server's {cached, data})

type SearchResponse struct {
	Cached bool                     `json:"cached"`
	Data   []media.SearchResultItem `json:"data"`
}

type MovieResponse struct {
	Cached bool              `json:"cached"`
	Data   media.MovieDetail `json:"data"`
}

type TVResponse struct {
	Cached bool           `json:"cached"`
	Data   media.TVDetail `json:"data"`
}

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var e errorBody
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			if e.Detail != "" {
				return fmt.Errorf("server error %d: %s: %s", resp.StatusCode, e.Error, e.Detail)
			}
			return fmt.Errorf("server error %d: %s", resp.StatusCode, e.Error)
		}
		return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Health checks that the service answers.
func (c *Client) Health(ctx context.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/health", &body); err != nil {
		return err
	}
	if body.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", body.Status)
	}
	return nil
}

// Search queries /search. An empty searchType leaves the server default.
func (c *Client) Search(ctx context.Context, query, searchType string) (*SearchResponse, error) {
	params := url.Values{"q": {query}}
	if searchType != "" {
		params.Set("type", searchType)
	}
	var resp SearchResponse
	if err := c.get(ctx, "/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []media.SearchResultItem{}
	}
	return &resp, nil
}

// Movie fetches /movie/{id}.
func (c *Client) Movie(ctx context.Context, id int64) (*MovieResponse, error) {
	var resp MovieResponse
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TV fetches /tv/{id}.
func (c *Client) TV(ctx context.Context, id int64) (*TVResponse, error) {
	var resp TVResponse
	if err := c.get(ctx, "/tv/"+strconv.FormatInt(id, 10), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
