package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
)

// cliOptions holds the persistent flags shared by every subcommand
type cliOptions struct {
	configPath    string
	resume        string
	jobs          string
	resumeOut     string
	feedbackOut   string
	provider      string
	model         string
	apiKeyEnv     string
	baseURL       string
	maxRetries    int
	failOnMissing bool
	verbose       bool
}

func (o *cliOptions) bind(cmd *cobra.Command) {
	defaults := config.Defaults()
	flags := cmd.PersistentFlags()

	// Config file flag (processed first)
	flags.StringVar(&o.configPath, "config", "", "Path to a JSON or YAML config file (values can be overridden by other flags)")

	flags.StringVarP(&o.resume, "resume", "r", defaults.Resume, "Path to the master resume (text, .csv, .pdf, .docx or .html)")
	flags.StringVarP(&o.jobs, "jobs", "j", defaults.Jobs, "Path to the job descriptions")
	flags.StringVar(&o.resumeOut, "resume-out", defaults.ResumeOut, "Where to write the tailored resume")
	flags.StringVar(&o.feedbackOut, "feedback-out", defaults.FeedbackOut, "Where to write the recruiter feedback")

	flags.StringVarP(&o.provider, "provider", "p", defaults.Provider, "LLM provider: openai, gemini or anthropic")
	flags.StringVarP(&o.model, "model", "m", "", "Model name (defaults to the provider's default model)")
	flags.StringVar(&o.apiKeyEnv, "api-key-env", "", "Environment variable holding the API key (defaults per provider, Auto_job_gen for openai)")
	flags.StringVar(&o.baseURL, "base-url", "", "Override the provider API endpoint")
	flags.IntVar(&o.maxRetries, "max-retries", defaults.MaxRetries, "Retries for transient provider failures (0 disables retrying)")

	flags.BoolVar(&o.failOnMissing, "fail-on-missing", false, "Exit with status 2 when an input file is missing")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Print detailed debug information")
}

// buildConfig layers defaults, the optional config file and explicitly set flags.
func (o *cliOptions) buildConfig(cmd *cobra.Command) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if o.configPath != "" {
		loadedCfg, err := config.LoadConfig(o.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("resume") {
		cfg.Resume = o.resume
	}
	if flags.Changed("jobs") {
		cfg.Jobs = o.jobs
	}
	if flags.Changed("resume-out") {
		cfg.ResumeOut = o.resumeOut
	}
	if flags.Changed("feedback-out") {
		cfg.FeedbackOut = o.feedbackOut
	}
	if flags.Changed("provider") {
		cfg.Provider = o.provider
	}
	if flags.Changed("model") {
		cfg.Model = o.model
	}
	if flags.Changed("api-key-env") {
		cfg.APIKeyEnv = o.apiKeyEnv
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = o.baseURL
	}
	if flags.Changed("max-retries") {
		cfg.MaxRetries = o.maxRetries
	}
	if flags.Changed("fail-on-missing") {
		cfg.FailOnMissing = o.failOnMissing
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}

	// Step 3: Fill the rest from defaults
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveSettings builds the run settings. The credential is checked here, before any
// input document is opened.
func (o *cliOptions) resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	cfg, err := o.buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	return config.Resolve(cfg, os.Getenv)
}
