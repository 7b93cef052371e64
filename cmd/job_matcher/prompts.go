package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/review"
	"github.com/jonathan/job-matcher/internal/tailoring"
)

func newPromptsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prompts",
		Short: "Print the prompts a run would send, without calling the provider",
		Long: `Loads the input files and prints both rendered prompts. No credential is needed.

The recruiter prompt is rendered against the master resume, since the tailored resume only
exists after a real run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.buildConfig(cmd)
			if err != nil {
				return err
			}

			masterResume, err := ingestion.LoadMasterResume(cfg.Resume)
			if err != nil {
				return fmt.Errorf("failed to load master resume: %w", err)
			}
			jobDescriptions, err := ingestion.LoadJobDescriptions(cfg.Jobs)
			if err != nil {
				return fmt.Errorf("failed to load job descriptions: %w", err)
			}

			printer := observability.NewPrinter(cmd.OutOrStdout())
			printPrompt(printer, "Resume synthesis", tailoring.SystemPrompt(),
				tailoring.BuildResumePrompt(masterResume, jobDescriptions))
			printPrompt(printer, "Recruiter review", review.SystemPrompt(),
				review.BuildFeedbackPrompt(masterResume, jobDescriptions))
			return nil
		},
	}
}

func printPrompt(printer *observability.Printer, title, system, user string) {
	printer.Step("=== %s: system ===", title)
	printer.Info("%s\n", system)
	printer.Step("=== %s: user ===", title)
	printer.Info("%s\n", user)
}
