package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

const defaultServerURL = "http://localhost:5000"

// options holds the persistent flags shared by every command.
type options struct {
	serverURL  string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "moviems",
		Short: "CLI client for the moviems data service",
		Long: `moviems - CLI client for the moviems data service

Search movies and series and show their details.

Run 'moviemsd' to start the service.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.serverURL, "server", defaultServerURL, "Server URL")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")

	root.Version = version
	root.SetVersionTemplate("moviems {{.Version}}\n")

	root.AddCommand(
		newHealthCmd(opts),
		newSearchCmd(opts),
		newDetailCmd(opts),
	)
	return root
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
