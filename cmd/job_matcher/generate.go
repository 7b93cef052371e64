package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/pipeline"
)

// newClient is replaced in tests
var newClient = llm.NewClient

func newGenerateCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the tailored resume and recruiter feedback",
		Long: `Runs the two-step generation: an ATS-optimized resume is synthesized from the master resume
and job descriptions and saved, then the saved resume is reviewed against the same job
descriptions and the feedback is saved.

A missing input file is reported and the run stops before any provider call. The exit status
is 0 in that case unless --fail-on-missing is set.

The credential is checked before any input document is opened. A .env file and the --config
file are read first, since either may name the variable that holds the credential.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}
}

func runGenerate(cmd *cobra.Command, opts *cliOptions) error {
	ctx := cmd.Context()

	settings, err := opts.resolveSettings(cmd)
	if err != nil {
		return err
	}

	logger := observability.NewLogger(settings.Verbose, cmd.ErrOrStderr())
	printer := observability.NewPrinter(cmd.OutOrStdout())

	client, err := newClient(ctx, settings.LLMConfig(), settings.APIKey)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			logger.WithError(cerr).Warn("failed to close client")
		}
	}()

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Settings: settings,
		Client:   client,
		Printer:  printer,
		Logger:   logger,
		OnProgress: func(event pipeline.ProgressEvent) {
			logger.WithFields(logrus.Fields{
				"run_id":   event.RunID,
				"step":     event.Step,
				"category": event.Category,
				"state":    event.State,
			}).Debug(event.Message)
		},
	})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"run_id": result.RunID.String(),
		"state":  result.State,
	}).Debug("run finished")
	return nil
}
