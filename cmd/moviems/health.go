package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the service is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := NewClient(opts.serverURL).Health(cmd.Context()); err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]string{"status": "ok"})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
