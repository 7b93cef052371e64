package llm

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicMaxTokens = 4096

// AnthropicClient implements Client for the Anthropic Messages API
type AnthropicClient struct {
	client anthropic.Client
	config *Config
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(config *Config, apiKey string) *AnthropicClient {
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(apiKey),
		// retries are owned by WithRetry so a single Complete is a single exchange
		anthropicoption.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, anthropicoption.WithBaseURL(config.BaseURL))
	}

	return &AnthropicClient{
		client: anthropic.NewClient(opts...),
		config: config,
	}
}

// Complete sends the system message as system blocks and the rest as user turns
func (c *AnthropicClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	system, rest := splitMessages(messages)

	maxTokens := int64(defaultAnthropicMaxTokens)
	if c.config.MaxTokens > 0 {
		maxTokens = int64(c.config.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  make([]anthropic.MessageParam, 0, len(rest)),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if c.config.Temperature != nil {
		params.Temperature = anthropic.Float(float64(*c.config.Temperature))
	}
	for _, m := range rest {
		params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", anthropicError("failed to create message", err)
	}

	var parts []string
	for _, block := range resp.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", newCallError(ProviderAnthropic, "no text blocks in response", 0, ErrEmptyCompletion)
	}

	return strings.Join(parts, ""), nil
}

// ListModels returns the model IDs available to the API key
func (c *AnthropicClient) ListModels(ctx context.Context) ([]string, error) {
	page, err := c.client.Models.List(ctx, anthropic.ModelListParams{})
	if err != nil {
		return nil, anthropicError("failed to list models", err)
	}

	var ids []string
	for page != nil {
		for _, m := range page.Data {
			ids = append(ids, m.ID)
		}
		page, err = page.GetNextPage()
		if err != nil {
			return nil, anthropicError("failed to list models", err)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Close is a no-op; the HTTP client holds no dedicated resources
func (c *AnthropicClient) Close() error {
	return nil
}

// anthropicError maps SDK errors onto APICallError
func anthropicError(message string, err error) *APICallError {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return newCallError(ProviderAnthropic, message, apiErr.StatusCode, err)
	}
	return newCallError(ProviderAnthropic, message, 0, err)
}
