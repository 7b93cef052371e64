// Package config provides configuration loading, merging and credential resolution for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/output"
	"github.com/jonathan/job-matcher/internal/schemas"
)

// DefaultRetryDelay is the delay before the first retry when retries are enabled.
const DefaultRetryDelay = time.Second

// ErrMissingCredential is returned when the API key environment variable is unset or blank.
var ErrMissingCredential = errors.New("missing API credential")

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume      string `json:"resume,omitempty"`       // Master resume input
	Jobs        string `json:"jobs,omitempty"`         // Job descriptions input
	ResumeOut   string `json:"resume_out,omitempty"`   // Tailored resume output
	FeedbackOut string `json:"feedback_out,omitempty"` // Recruiter feedback output

	// Provider
	Provider    string   `json:"provider,omitempty"`    // openai, gemini or anthropic
	Model       string   `json:"model,omitempty"`       // Model identifier; provider default when empty
	APIKeyEnv   string   `json:"api_key_env,omitempty"` // Name of the environment variable holding the key
	BaseURL     string   `json:"base_url,omitempty"`    // Endpoint override
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`

	// Retries
	MaxRetries   int  `json:"max_retries,omitempty"`
	RetryDelayMS *int `json:"retry_delay_ms,omitempty"` // Zero disables the wait between attempts

	// Behavior
	FailOnMissing bool `json:"fail_on_missing,omitempty"` // Exit non-zero when an input is missing
	Verbose       bool `json:"verbose,omitempty"`         // Print detailed debug information
}

// Defaults returns the configuration used when neither flags nor a file set a value.
func Defaults() Config {
	return Config{
		Resume:       ingestion.DefaultMasterResumePath,
		Jobs:         ingestion.DefaultJobDescriptionsPath,
		ResumeOut:    output.DefaultResumePath,
		FeedbackOut:  output.DefaultFeedbackPath,
		Provider:     string(llm.ProviderOpenAI),
		RetryDelayMS: intPtr(int(DefaultRetryDelay / time.Millisecond)),
	}
}

// LoadConfig loads configuration from a JSON or YAML file and validates it against
// the settings schema. YAML is selected by a .yaml or .yml extension.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, err
		}
	default:
		if !json.Valid(data) {
			return nil, fmt.Errorf("failed to parse config JSON: %s", path)
		}
	}

	if err := schemas.ValidateDocument(schemas.ConfigSchema(), data); err != nil {
		return nil, fmt.Errorf("config error in %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// yamlToJSON re-encodes a YAML mapping as JSON so both formats share the schema check.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config YAML: %w", err)
	}
	return out, nil
}

// Validate checks cross-field constraints the schema cannot express.
// Required fields are not checked here since defaults are applied after merging.
func (c *Config) Validate() error {
	if c.MaxRetries < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}
	if c.RetryDelayMS != nil && *c.RetryDelayMS < 0 {
		return fmt.Errorf("config error: 'retry_delay_ms' must be non-negative")
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("config error: 'max_tokens' must be non-negative")
	}

	// An output must never overwrite an input or the other output
	outputs := map[string]string{"resume_out": c.ResumeOut, "feedback_out": c.FeedbackOut}
	inputs := map[string]string{"resume": c.Resume, "jobs": c.Jobs}
	if c.ResumeOut != "" && samePath(c.ResumeOut, c.FeedbackOut) {
		return fmt.Errorf("config error: 'resume_out' and 'feedback_out' must be different files")
	}
	for outName, out := range outputs {
		for inName, in := range inputs {
			if out != "" && samePath(out, in) {
				return fmt.Errorf("config error: '%s' would overwrite '%s' (%s)", outName, inName, in)
			}
		}
	}

	return nil
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.ResumeOut == "" {
		result.ResumeOut = defaults.ResumeOut
	}
	if result.FeedbackOut == "" {
		result.FeedbackOut = defaults.FeedbackOut
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKeyEnv == "" {
		result.APIKeyEnv = defaults.APIKeyEnv
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}

	// Int fields: use default if zero
	if result.MaxTokens == 0 {
		result.MaxTokens = defaults.MaxTokens
	}
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}

	// Pointer fields: nil is unset, so an explicit zero survives
	if result.RetryDelayMS == nil {
		result.RetryDelayMS = defaults.RetryDelayMS
	}
	if result.Temperature == nil {
		result.Temperature = defaults.Temperature
	}

	// Bool fields: cannot distinguish unset from false, so a true on either side wins
	result.FailOnMissing = result.FailOnMissing || defaults.FailOnMissing
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

func intPtr(v int) *int {
	return &v
}
