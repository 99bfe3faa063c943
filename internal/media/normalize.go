package media

import (
	"encoding/json"
	"fmt"

	"github.com/vmunix/moviems/internal/tmdb"
)

// SearchResults normalizes a TMDB search page (multi, movie or tv).
func SearchResults(raw json.RawMessage) ([]SearchResultItem, error) {
	var page tmdb.SearchPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode search page: %w", err)
	}

	items := make([]SearchResultItem, 0, len(page.Results))
	for _, r := range page.Results {
		items = append(items, searchItem(r))
	}
	return items, nil
}

func searchItem(r tmdb.SearchResult) SearchResultItem {
	title := r.Title
	if title == "" {
		title = r.Name
	}

	typ := classify(r)
	releaseDate := r.FirstAirDate
	if typ == TypeMovie {
		releaseDate = r.ReleaseDate
	}

	return SearchResultItem{
		ID:          r.ID,
		Title:       title,
		Overview:    r.Overview,
		Type:        typ,
		PosterURL:   tmdb.PosterURL(searchPosterSize, r.PosterPath),
		ReleaseDate: releaseDate,
	}
}

// classify guesses the media type of a search hit. /search/multi tags hits
// with media_type, but /search/movie and /search/tv do not, so a present
// "title" also counts as a movie. Anything else, people included, is "tv".
// This is a heuristic, not an authoritative discriminator.
func classify(r tmdb.SearchResult) Type {
	if r.MediaType == "movie" || r.Title != "" {
		return TypeMovie
	}
	return TypeTV
}

// Movie normalizes a /movie/{id} payload.
func Movie(raw json.RawMessage) (MovieDetail, error) {
	var m tmdb.MovieDetails
	if err := json.Unmarshal(raw, &m); err != nil {
		return MovieDetail{}, fmt.Errorf("decode movie: %w", err)
	}

	d := MovieDetail{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterURL:   tmdb.PosterURL(detailPosterSize, m.PosterPath),
		Genres:      genreNames(m.Genres),
		ReleaseDate: m.ReleaseDate,
	}
	if m.Runtime > 0 {
		runtime := m.Runtime
		d.RuntimeMinutes = &runtime
	}
	return d, nil
}

// TV normalizes a /tv/{id} payload.
func TV(raw json.RawMessage) (TVDetail, error) {
	var s tmdb.TVDetails
	if err := json.Unmarshal(raw, &s); err != nil {
		return TVDetail{}, fmt.Errorf("decode tv: %w", err)
	}

	return TVDetail{
		ID:           s.ID,
		Title:        s.Name,
		Overview:     s.Overview,
		PosterURL:    tmdb.PosterURL(detailPosterSize, s.PosterPath),
		Genres:       genreNames(s.Genres),
		SeasonsCount: s.NumberOfSeasons,
		FirstAirDate: s.FirstAirDate,
	}, nil
}

func genreNames(genres []tmdb.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}
