// Package main provides the job_matcher command, which tailors a master résumé to a set of
// job descriptions and asks a recruiter persona to critique the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/pipeline"
)

// Exit codes
const (
	exitOK           = 0
	exitFailure      = 1
	exitInputMissing = 2
)

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "job_matcher",
		Short: "Tailor a master resume to job descriptions and get recruiter feedback",
		Long: `job_matcher reads a master resume and a set of job descriptions, asks a language model
for an ATS-optimized resume tailored to those jobs, saves it, and then asks the model to
review that resume as a recruiter would. Running without a subcommand is the same as "generate".

Configuration can be loaded from a JSON or YAML file using --config. Command-line flags override config file values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}
	opts.bind(rootCmd)

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newModelsCmd(opts))
	rootCmd.AddCommand(newPromptsCmd(opts))
	return rootCmd
}

// exitCode maps a command error onto the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, pipeline.ErrInputsMissing):
		return exitInputMissing
	default:
		return exitFailure
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
