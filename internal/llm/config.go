// Package llm provides the provider-neutral text completion client used by the generation pipeline.
// Each provider turns an ordered list of role-tagged messages into a single completion.
package llm

import (
	"fmt"
	"strings"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is the OpenAI chat completions API
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderAnthropic is the Anthropic Messages API
	ProviderAnthropic Provider = "anthropic"
)

// Providers lists every supported provider in display order.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderGemini, ProviderAnthropic}
}

var defaultModels = map[Provider]string{
	ProviderOpenAI:    "gpt-4o",
	ProviderGemini:    "gemini-2.5-pro",
	ProviderAnthropic: "claude-sonnet-4-5",
}

var defaultCredentialEnv = map[Provider]string{
	ProviderOpenAI:    "Auto_job_gen",
	ProviderGemini:    "GEMINI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// DefaultModel returns the model used when none is configured for the provider.
func DefaultModel(p Provider) string {
	return defaultModels[p]
}

// DefaultCredentialEnv returns the environment variable holding the provider's API key.
func DefaultCredentialEnv(p Provider) string {
	return defaultCredentialEnv[p]
}

// ParseProvider converts a case-insensitive provider name into a Provider.
func ParseProvider(name string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := defaultModels[p]; !ok {
		return "", fmt.Errorf("unknown provider %q (supported: openai, gemini, anthropic)", name)
	}
	return p, nil
}

// Config holds the client configuration for a single provider
type Config struct {
	Provider Provider
	// BaseURL overrides the provider endpoint (proxies, compatible gateways, tests).
	BaseURL     string
	MaxTokens   int
	Temperature *float32
}

// DefaultConfig returns the default configuration (OpenAI)
func DefaultConfig() *Config {
	return &Config{
		Provider:  ProviderOpenAI,
		MaxTokens: 4096,
	}
}

// WithProvider returns a copy of the config targeting another provider
func (c *Config) WithProvider(p Provider) *Config {
	newConfig := *c
	newConfig.Provider = p
	return &newConfig
}
