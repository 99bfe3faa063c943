package tmdb

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAPIKey is returned by FetchPrimary when the client has no TMDB key.
	ErrNoAPIKey = errors.New("tmdb api key not configured")

	// ErrUpstreamStatus is wrapped by FetchError for non-2xx responses.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
)

// FetchError describes a failed upstream call: a transport failure, a non-2xx
// status, or a body that is not JSON. URL never contains the API key.
type FetchError struct {
	URL        string
	StatusCode int // 0 if no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: %v (%d)", e.URL, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
