package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviems/internal/media"
)

var errEmptyQuery = errors.New("empty query")

func newSearchCmd(opts *options) *cobra.Command {
	var searchType string

	cmd := &cobra.Command{
		Use:   "search [flags] <query>...",
		Short: "Search movies and series",
		Long: `Search movies and series.

Without a TMDB key on the server, results come from the fallback catalog.

Examples:
  moviems search inception
  moviems search "the office" --type tv
  moviems search --json totoro`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errEmptyQuery
			}

			// Any failure is shown as an empty result list
			resp, err := NewClient(opts.serverURL).Search(cmd.Context(), query, searchType)
			if err != nil {
				if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "search: %v\n", err)
				}
				resp = &SearchResponse{Data: []media.SearchResultItem{}}
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(out, resp)
			}
			if len(resp.Data) == 0 {
				_, _ = fmt.Fprintln(out, "No results")
				return nil
			}

			rows := make([][]string, 0, len(resp.Data))
			for _, item := range resp.Data {
				rows = append(rows, []string{
					strconv.FormatInt(item.ID, 10),
					string(item.Type),
					truncate(item.Title, 50),
					item.ReleaseDate,
				})
			}
			printRows(out, []string{"ID", "TYPE", "TITLE", "RELEASED"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft})
			return nil
		},
	}

	cmd.Flags().StringVar(&searchType, "type", "", "Search type (multi, movie or tv)")
	cmd.Flags().BoolP("verbose", "v", false, "Print the underlying error when a search fails")
	return cmd
}
