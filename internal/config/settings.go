package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-matcher/internal/llm"
)

// Settings are the resolved, validated values a run executes with.
type Settings struct {
	ResumePath  string `validate:"required"`
	JobsPath    string `validate:"required"`
	ResumeOut   string `validate:"required"`
	FeedbackOut string `validate:"required,nefield=ResumeOut"`

	Provider    llm.Provider `validate:"required,oneof=openai gemini anthropic"`
	Model       string       `validate:"required"`
	APIKeyEnv   string       `validate:"required"`
	APIKey      string       `validate:"required"`
	BaseURL     string       `validate:"omitempty,url"`
	MaxTokens   int          `validate:"gte=0"`
	Temperature *float32     `validate:"omitempty,gte=0,lte=2"`

	MaxRetries int           `validate:"gte=0,lte=10"`
	RetryDelay time.Duration `validate:"gte=0"`

	FailOnMissing bool
	Verbose       bool
}

// Validate validates the Settings using the validator.
func (s *Settings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// LLMConfig returns the client configuration for the resolved provider.
func (s *Settings) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig().WithProvider(s.Provider)
	cfg.BaseURL = s.BaseURL
	if s.MaxTokens > 0 {
		cfg.MaxTokens = s.MaxTokens
	}
	cfg.Temperature = s.Temperature
	return cfg
}

// Resolve turns a merged Config into Settings. The credential is read through getenv
// before anything else touches the filesystem or network; an unset or blank variable
// yields ErrMissingCredential.
func Resolve(cfg Config, getenv func(string) string) (*Settings, error) {
	providerName := cfg.Provider
	if providerName == "" {
		providerName = string(llm.ProviderOpenAI)
	}
	provider, err := llm.ParseProvider(providerName)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	keyEnv := cfg.APIKeyEnv
	if keyEnv == "" {
		keyEnv = llm.DefaultCredentialEnv(provider)
	}
	apiKey := strings.TrimSpace(getenv(keyEnv))
	if apiKey == "" {
		return nil, fmt.Errorf("%w: environment variable %s is not set", ErrMissingCredential, keyEnv)
	}

	model := cfg.Model
	if model == "" {
		model = llm.DefaultModel(provider)
	}

	retryDelay := DefaultRetryDelay
	if cfg.RetryDelayMS != nil {
		retryDelay = time.Duration(*cfg.RetryDelayMS) * time.Millisecond
	}

	settings := &Settings{
		ResumePath:    cfg.Resume,
		JobsPath:      cfg.Jobs,
		ResumeOut:     cfg.ResumeOut,
		FeedbackOut:   cfg.FeedbackOut,
		Provider:      provider,
		Model:         model,
		APIKeyEnv:     keyEnv,
		APIKey:        apiKey,
		BaseURL:       cfg.BaseURL,
		MaxTokens:     cfg.MaxTokens,
		MaxRetries:    cfg.MaxRetries,
		RetryDelay:    retryDelay,
		FailOnMissing: cfg.FailOnMissing,
		Verbose:       cfg.Verbose,
	}
	if cfg.Temperature != nil {
		t := float32(*cfg.Temperature)
		settings.Temperature = &t
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}
