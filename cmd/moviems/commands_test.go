package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the CLI with args and returns stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSearchCmd_PlainOutput(t *testing.T) {
	srv, seen := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/search": respondJSON(t, `{"cached":false,"data":[
			{"id":27205,"title":"Inception","type":"movie","releaseDate":"2010-07-15"},
			{"id":1399,"title":"Game of Thrones","type":"tv"}
		]}`),
	})

	out, err := runCmd(t, "--server", srv.URL, "search", "  inception  ")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "27205\tmovie\tInception\t2010-07-15", lines[0])
	assert.Equal(t, "1399\ttv\tGame of Thrones\t", lines[1])
	assert.Equal(t, []string{"/search?q=inception"}, seen.URIs())
}

func TestSearchCmd_JoinsArgsAndType(t *testing.T) {
	srv, seen := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/search": respondJSON(t, `{"cached":true,"data":[]}`),
	})

	out, err := runCmd(t, "--server", srv.URL, "search", "the", "office", "--type", "tv")
	require.NoError(t, err)
	assert.Equal(t, "No results\n", out)
	assert.Equal(t, []string{"/search?q=the+office&type=tv"}, seen.URIs())
}

func TestSearchCmd_ErrorBecomesEmpty(t *testing.T) {
	srv, _ := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/search": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"api error"}`))
		},
	})

	out, err := runCmd(t, "--server", srv.URL, "search", "inception")
	require.NoError(t, err)
	assert.Equal(t, "No results\n", out)

	out, err = runCmd(t, "--server", srv.URL, "--json", "search", "inception")
	require.NoError(t, err)
	assert.JSONEq(t, `{"cached":false,"data":[]}`, out)
}

func TestSearchCmd_EmptyQuery(t *testing.T) {
	_, err := runCmd(t, "--server", "http://127.0.0.1:1", "search", "   ")
	assert.ErrorIs(t, err, errEmptyQuery)
}

func TestSearchCmd_JSON(t *testing.T) {
	srv, _ := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/search": respondJSON(t, `{"cached":true,"data":[{"id":2,"title":"My Neighbor Totoro","type":"movie"}]}`),
	})

	out, err := runCmd(t, "--server", srv.URL, "--json", "search", "totoro")
	require.NoError(t, err)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Cached)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(2), resp.Data[0].ID)
}

func TestDetailCmd_Movie(t *testing.T) {
	srv, _ := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/movie/550": respondJSON(t, `{"cached":false,"data":{"id":550,"title":"Fight Club","overview":"Rules.","genres":["Drama","Thriller"],"runtimeMinutes":139,"releaseDate":"1999-10-15"}}`),
	})

	out, err := runCmd(t, "--server", srv.URL, "detail", "movie", "550")
	require.NoError(t, err)
	assert.Contains(t, out, "title\tFight Club\n")
	assert.Contains(t, out, "runtime\t139 min\n")
	assert.Contains(t, out, "genres\tDrama, Thriller\n")
}

func TestDetailCmd_TV(t *testing.T) {
	srv, _ := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/tv/1399": respondJSON(t, `{"cached":true,"data":{"id":1399,"title":"Game of Thrones","overview":"","genres":[],"seasonsCount":8,"firstAirDate":"2011-04-17"}}`),
	})

	out, err := runCmd(t, "--server", srv.URL, "detail", "TV", "1399")
	require.NoError(t, err)
	assert.Contains(t, out, "seasons\t8\n")
	assert.Contains(t, out, "first aired\t2011-04-17\n")
}

func TestDetailCmd_ErrorBecomesUnavailable(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	out, err := runCmd(t, "--server", srv.URL, "detail", "movie", "9")
	require.NoError(t, err)
	assert.Equal(t, "No detail available\n", out)

	out, err = runCmd(t, "--server", srv.URL, "--json", "detail", "tv", "9")
	require.NoError(t, err)
	assert.JSONEq(t, `{"cached":false,"data":null}`, out)
}

func TestDetailCmd_BadArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown type", []string{"detail", "person", "1"}},
		{"non-numeric id", []string{"detail", "movie", "abc"}},
		{"zero id", []string{"detail", "movie", "0"}},
		{"missing id", []string{"detail", "movie"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, append([]string{"--server", "http://127.0.0.1:1"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestHealthCmd(t *testing.T) {
	srv, _ := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/health": respondJSON(t, `{"status":"ok"}`),
	})

	out, err := runCmd(t, "--server", srv.URL, "health")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, err = runCmd(t, "--server", "http://127.0.0.1:1", "health")
	assert.Error(t, err)
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"ID", "TITLE"}, [][]string{{"1", "Spirited Away"}, {"22"}}, []columnAlignment{alignRight})
	assert.Contains(t, out, "Spirited Away")
	assert.Contains(t, out, "╭")
	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Amél...", truncate("Amélie Poulain", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
