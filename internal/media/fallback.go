package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/moviems/internal/tmdb"
)

var errUnknownCatalogShape = errors.New("fallback catalog is neither a list nor an object with results")

// FallbackResults filters and normalizes the fallback catalog for query.
// The catalog is movie-only, so every item is typed "movie". An item matches
// when query is a case- and accent-insensitive substring of its title
// followed by its name. Matches are ordered by title similarity to the query;
// ties keep catalog order.
func FallbackResults(raw json.RawMessage, query string) ([]SearchResultItem, error) {
	films, err := decodeCatalog(raw)
	if err != nil {
		return nil, err
	}

	needle := fold(strings.TrimSpace(query))

	type match struct {
		item  SearchResultItem
		score float32
	}
	var matches []match
	for i, f := range films {
		haystack := fold(f.Title + f.Name)
		if !strings.Contains(haystack, needle) {
			continue
		}
		item := fallbackItem(f, i)
		matches = append(matches, match{
			item:  item,
			score: edlib.JaroWinklerSimilarity(needle, fold(item.Title)),
		})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})

	items := make([]SearchResultItem, len(matches))
	for i, m := range matches {
		items[i] = m.item
	}
	return items, nil
}

// decodeCatalog accepts either a bare JSON array or {"results": [...]}.
func decodeCatalog(raw json.RawMessage) ([]tmdb.FallbackFilm, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errUnknownCatalogShape
	}

	var films []tmdb.FallbackFilm
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &films); err != nil {
			return nil, fmt.Errorf("decode fallback catalog: %w", err)
		}
	case '{':
		var wrapped struct {
			Results []tmdb.FallbackFilm `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("decode fallback catalog: %w", err)
		}
		films = wrapped.Results
	default:
		return nil, errUnknownCatalogShape
	}
	return films, nil
}

func fallbackItem(f tmdb.FallbackFilm, index int) SearchResultItem {
	title := f.Title
	if title == "" {
		title = f.Name
	}
	overview := f.Overview
	if overview == "" {
		overview = f.Description
	}
	poster := tmdb.PosterURL(searchPosterSize, f.PosterPath)
	if poster == "" && (strings.HasPrefix(f.Image, "https://") || strings.HasPrefix(f.Image, "http://")) {
		poster = f.Image
	}

	return SearchResultItem{
		ID:          fallbackID(f.ID, index),
		Title:       title,
		Overview:    overview,
		Type:        TypeMovie,
		PosterURL:   poster,
		ReleaseDate: f.ReleaseDate,
	}
}

// fallbackID returns the item's own integer id, or its 1-based position in
// the catalog when the id is missing or not an integer.
func fallbackID(raw json.RawMessage, index int) int64 {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return int64(index + 1)
}

// fold normalizes s for case- and accent-insensitive comparison.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	result, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return result
}
