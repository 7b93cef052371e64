package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/observability"
)

func newModelsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models available to the configured API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			settings, err := opts.resolveSettings(cmd)
			if err != nil {
				return err
			}

			client, err := newClient(ctx, settings.LLMConfig(), settings.APIKey)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			models, err := client.ListModels(ctx)
			if err != nil {
				return fmt.Errorf("failed to list models: %w", err)
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintModels(string(settings.Provider), models)
			return nil
		},
	}
}
