package media

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResults_Multi(t *testing.T) {
	raw := json.RawMessage(`{
		"page": 1,
		"results": [
			{"id": 27205, "media_type": "movie", "title": "Inception", "overview": "Dreams.",
			 "poster_path": "/inception.jpg", "release_date": "2010-07-15"},
			{"id": 1399, "media_type": "tv", "name": "Game of Thrones",
			 "poster_path": "/got.jpg", "first_air_date": "2011-04-17"},
			{"id": 42, "media_type": "tv", "name": "No Poster"}
		]
	}`)

	items, err := SearchResults(raw)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, SearchResultItem{
		ID:          27205,
		Title:       "Inception",
		Overview:    "Dreams.",
		Type:        TypeMovie,
		PosterURL:   "https://image.tmdb.org/t/p/w300/inception.jpg",
		ReleaseDate: "2010-07-15",
	}, items[0])

	assert.Equal(t, "Game of Thrones", items[1].Title)
	assert.Equal(t, TypeTV, items[1].Type)
	assert.Equal(t, "2011-04-17", items[1].ReleaseDate)
	assert.Equal(t, "https://image.tmdb.org/t/p/w300/got.jpg", items[1].PosterURL)

	assert.Empty(t, items[2].PosterURL, "no poster path means no poster url")
	assert.Empty(t, items[2].ReleaseDate)
}

func TestSearchResults_TitleImpliesMovie(t *testing.T) {
	// /search/movie results carry no media_type
	raw := json.RawMessage(`{"results":[{"id":603,"title":"The Matrix","release_date":"1999-03-30"}]}`)

	items, err := SearchResults(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, TypeMovie, items[0].Type)
	assert.Equal(t, "1999-03-30", items[0].ReleaseDate)
}

func TestSearchResults_MovieTagWithoutTitle(t *testing.T) {
	raw := json.RawMessage(`{"results":[{"id":7,"media_type":"movie","name":"Odd Row","release_date":"2001-01-01","first_air_date":"1990-01-01"}]}`)

	items, err := SearchResults(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Odd Row", items[0].Title)
	assert.Equal(t, TypeMovie, items[0].Type)
	assert.Equal(t, "2001-01-01", items[0].ReleaseDate, "movies use release_date")
}

func TestSearchResults_Empty(t *testing.T) {
	items, err := SearchResults(json.RawMessage(`{"results":[]}`))
	require.NoError(t, err)
	assert.NotNil(t, items, "empty results should encode as []")
	assert.Empty(t, items)

	items, err = SearchResults(json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearchResults_Malformed(t *testing.T) {
	_, err := SearchResults(json.RawMessage(`{"results": "nope"}`))
	assert.Error(t, err)
}

func TestMovie(t *testing.T) {
	raw := json.RawMessage(`{"id":27205,"title":"Inception","poster_path":"/abc.jpg","genres":[{"id":1,"name":"Action"}]}`)

	movie, err := Movie(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(27205), movie.ID)
	assert.Equal(t, "Inception", movie.Title)
	assert.True(t, strings.HasSuffix(movie.PosterURL, "/abc.jpg"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", movie.PosterURL)
	assert.Equal(t, []string{"Action"}, movie.Genres)
	assert.Nil(t, movie.RuntimeMinutes, "missing runtime stays absent")
}

func TestMovie_FullPayload(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 550, "title": "Fight Club", "overview": "An insomniac office worker...",
		"poster_path": "/fc.jpg", "release_date": "1999-10-15", "runtime": 139,
		"genres": [{"id":18,"name":"Drama"},{"id":53,"name":"Thriller"}]
	}`)

	movie, err := Movie(raw)
	require.NoError(t, err)
	require.NotNil(t, movie.RuntimeMinutes)
	assert.Equal(t, 139, *movie.RuntimeMinutes)
	assert.Equal(t, "1999-10-15", movie.ReleaseDate)
	assert.Equal(t, []string{"Drama", "Thriller"}, movie.Genres, "genre order is preserved")

	encoded, err := json.Marshal(movie)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"runtimeMinutes":139`)
	assert.Contains(t, string(encoded), `"posterUrl":"https://image.tmdb.org/t/p/w500/fc.jpg"`)
}

func TestMovie_NoGenresEncodesEmptyList(t *testing.T) {
	movie, err := Movie(json.RawMessage(`{"id":1,"title":"Bare"}`))
	require.NoError(t, err)

	encoded, err := json.Marshal(movie)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"genres":[]`)
	assert.NotContains(t, string(encoded), "posterUrl")
}

func TestTV(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 1399, "name": "Game of Thrones", "overview": "Seven noble families...",
		"poster_path": "/got.jpg", "first_air_date": "2011-04-17", "number_of_seasons": 8,
		"genres": [{"id":10765,"name":"Sci-Fi & Fantasy"},{"id":18,"name":"Drama"}]
	}`)

	show, err := TV(raw)
	require.NoError(t, err)
	assert.Equal(t, TVDetail{
		ID:           1399,
		Title:        "Game of Thrones",
		Overview:     "Seven noble families...",
		PosterURL:    "https://image.tmdb.org/t/p/w500/got.jpg",
		Genres:       []string{"Sci-Fi & Fantasy", "Drama"},
		SeasonsCount: 8,
		FirstAirDate: "2011-04-17",
	}, show)
}

func TestDetail_Malformed(t *testing.T) {
	_, err := Movie(json.RawMessage(`[1,2,3]`))
	assert.Error(t, err)

	_, err = TV(json.RawMessage(`{"genres": {}}`))
	assert.Error(t, err)
}
