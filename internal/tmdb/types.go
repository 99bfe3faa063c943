// Package tmdb provides a client for The Movie Database API and for the
// unauthenticated fallback film catalog used when no TMDB key is configured.
package tmdb

import (
	"encoding/json"
	"strings"
)

// ImageBaseURL is the TMDB image CDN root.
const ImageBaseURL = "https://image.tmdb.org/t/p"

// SearchPage is one page of /search/multi, /search/movie or /search/tv.
type SearchPage struct {
	Page    int            `json:"page"`
	Results []SearchResult `json:"results"`
}

// SearchResult is a single search hit. Movies carry Title/ReleaseDate,
// series carry Name/FirstAirDate. MediaType is only set by /search/multi.
type SearchResult struct {
	ID           int64  `json:"id"`
	MediaType    string `json:"media_type"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	PosterPath   string `json:"poster_path"`
	ReleaseDate  string `json:"release_date"`   // "2010-07-15"
	FirstAirDate string `json:"first_air_date"` // "2011-04-17"
}

// MovieDetails is the /movie/{id} payload.
type MovieDetails struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	Runtime     int     `json:"runtime"` // minutes, 0 when unknown
	Genres      []Genre `json:"genres"`
}

// TVDetails is the /tv/{id} payload.
type TVDetails struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Overview        string  `json:"overview"`
	PosterPath      string  `json:"poster_path"`
	FirstAirDate    string  `json:"first_air_date"`
	NumberOfSeasons int     `json:"number_of_seasons"`
	Genres          []Genre `json:"genres"`
}

// Genre represents a TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FallbackFilm is one entry of the fallback catalog. The catalog is
// movie-only; ID may be a number, a string, or missing.
type FallbackFilm struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Name        string          `json:"name"`
	Overview    string          `json:"overview"`
	Description string          `json:"description"`
	PosterPath  string          `json:"poster_path"`
	Image       string          `json:"image"`
	ReleaseDate string          `json:"release_date"`
}

// PosterURL returns the full image URL for a poster path, or "" if path is empty.
// Size can be: w92, w154, w185, w300, w342, w500, w780, original
func PosterURL(size, path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return ImageBaseURL + "/" + size + path
}
