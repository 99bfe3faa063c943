// Package media defines the canonical records served to clients and the
// normalizers that build them from upstream payloads.
package media

// Type distinguishes movies from series.
type Type string

const (
	TypeMovie Type = "movie"
	TypeTV    Type = "tv"
)

// SearchResultItem is one normalized search hit.
type SearchResultItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview,omitempty"`
	Type        Type   `json:"type"`
	PosterURL   string `json:"posterUrl,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

// MovieDetail is the normalized detail record for a movie.
type MovieDetail struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Overview       string   `json:"overview"`
	PosterURL      string   `json:"posterUrl,omitempty"`
	Genres         []string `json:"genres"`
	RuntimeMinutes *int     `json:"runtimeMinutes,omitempty"`
	ReleaseDate    string   `json:"releaseDate"`
}

// TVDetail is the normalized detail record for a series.
type TVDetail struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Overview     string   `json:"overview"`
	PosterURL    string   `json:"posterUrl,omitempty"`
	Genres       []string `json:"genres"`
	SeasonsCount int      `json:"seasonsCount"`
	FirstAirDate string   `json:"firstAirDate"`
}

// Poster widths used for search cards and detail pages.
const (
	searchPosterSize = "w300"
	detailPosterSize = "w500"
)
