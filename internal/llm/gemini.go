package llm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(config.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete sends the system message as the model's system instruction and the
// remaining turns as user content
func (c *GeminiClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	system, rest := splitMessages(messages)

	m := c.client.GenerativeModel(model)
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}
	if c.config.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(c.config.MaxTokens))
	}
	if c.config.Temperature != nil {
		m.SetTemperature(*c.config.Temperature)
	}

	parts := make([]genai.Part, 0, len(rest))
	for _, msg := range rest {
		parts = append(parts, genai.Text(msg.Content))
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", geminiError("failed to generate content", err)
	}

	return extractTextFromResponse(resp)
}

// ListModels returns the model names visible to the API key
func (c *GeminiClient) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	it := c.client.ListModels(ctx)
	for {
		info, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, geminiError("failed to list models", err)
		}
		names = append(names, strings.TrimPrefix(info.Name, "models/"))
	}
	sort.Strings(names)
	return names, nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", newCallError(ProviderGemini, "no candidates in response", 0, ErrEmptyCompletion)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", newCallError(ProviderGemini, "no content in response", 0, ErrEmptyCompletion)
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", newCallError(ProviderGemini, "no text parts in response", 0, ErrEmptyCompletion)
	}

	return strings.Join(parts, ""), nil
}

// geminiError maps Google API errors onto APICallError
func geminiError(message string, err error) *APICallError {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return newCallError(ProviderGemini, message, gErr.Code, err)
	}
	return newCallError(ProviderGemini, message, 0, err)
}
