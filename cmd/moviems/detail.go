package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviems/internal/media"
)

func newDetailCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "detail <movie|tv> <id>",
		Short: "Show a movie or series",
		Example: `  moviems detail movie 27205
  moviems detail tv 1399`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := media.Type(strings.ToLower(args[0]))
			if kind != media.TypeMovie && kind != media.TypeTV {
				return fmt.Errorf("unknown type %q: want movie or tv", args[0])
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q", args[1])
			}

			client := NewClient(opts.serverURL)
			out := cmd.OutOrStdout()

			var (
				resp   any
				fields [][]string
			)
			if kind == media.TypeMovie {
				m, err := client.Movie(cmd.Context(), id)
				if err == nil {
					resp, fields = m, movieFields(m.Data)
				}
			} else {
				s, err := client.TV(cmd.Context(), id)
				if err == nil {
					resp, fields = s, tvFields(s.Data)
				}
			}

			if resp == nil {
				if opts.jsonOutput {
					return printJSON(out, map[string]any{"cached": false, "data": nil})
				}
				_, _ = fmt.Fprintln(out, "No detail available")
				return nil
			}
			if opts.jsonOutput {
				return printJSON(out, resp)
			}
			printRows(out, []string{"FIELD", "VALUE"}, fields, nil)
			return nil
		},
	}
}

func movieFields(m media.MovieDetail) [][]string {
	runtime := ""
	if m.RuntimeMinutes != nil {
		runtime = fmt.Sprintf("%d min", *m.RuntimeMinutes)
	}
	return [][]string{
		{"id", strconv.FormatInt(m.ID, 10)},
		{"title", m.Title},
		{"released", m.ReleaseDate},
		{"runtime", runtime},
		{"genres", strings.Join(m.Genres, ", ")},
		{"poster", m.PosterURL},
		{"overview", m.Overview},
	}
}

func tvFields(s media.TVDetail) [][]string {
	return [][]string{
		{"id", strconv.FormatInt(s.ID, 10)},
		{"title", s.Title},
		{"first aired", s.FirstAirDate},
		{"seasons", strconv.Itoa(s.SeasonsCount)},
		{"genres", strings.Join(s.Genres, ", ")},
		{"poster", s.PosterURL},
		{"overview", s.Overview},
	}
}
