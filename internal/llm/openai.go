package llm

import (
	"context"
	"errors"
	"fmt"
	"sort"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client for the OpenAI chat completions API
type OpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(config *Config, apiKey string) *OpenAIClient {
	clientConfig := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// Complete sends the conversation as chat messages and returns the first choice
func (c *OpenAIClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	if c.config.MaxTokens > 0 {
		req.MaxTokens = c.config.MaxTokens
	}
	if c.config.Temperature != nil {
		req.Temperature = *c.config.Temperature
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", openAIError("failed to create chat completion", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", newCallError(ProviderOpenAI, "no choices in response", 0, ErrEmptyCompletion)
	}

	return resp.Choices[0].Message.Content, nil
}

// ListModels returns the model IDs available to the API key
func (c *OpenAIClient) ListModels(ctx context.Context) ([]string, error) {
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, openAIError("failed to list models", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close is a no-op; the HTTP client holds no dedicated resources
func (c *OpenAIClient) Close() error {
	return nil
}

// openAIError maps go-openai errors onto APICallError
func openAIError(message string, err error) *APICallError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		callErr := newCallError(ProviderOpenAI, message, apiErr.HTTPStatusCode, err)
		if apiErr.Type == "insufficient_quota" {
			callErr.Kind = KindQuota
		}
		return callErr
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return newCallError(ProviderOpenAI, fmt.Sprintf("%s (HTTP %d)", message, reqErr.HTTPStatusCode), reqErr.HTTPStatusCode, err)
	}

	return newCallError(ProviderOpenAI, message, 0, err)
}
