package llm

import (
	"context"
	"fmt"
)

// Role tags a message as instructional context or the actual request
type Role string

const (
	// RoleSystem carries the instructional context
	RoleSystem Role = "system"
	// RoleUser carries the request body
	RoleUser Role = "user"
)

// Message is a single role-tagged prompt element
type Message struct {
	Role    Role
	Content string
}

// Conversation builds the ordered system/user pair sent for every completion.
func Conversation(system, user string) []Message {
	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}
}

// Client is an abstraction over LLM providers
type Client interface {
	// Complete returns the provider's single best completion for the messages
	Complete(ctx context.Context, model string, messages []Message) (string, error)
	// ListModels returns the model identifiers visible to the credential
	ListModels(ctx context.Context) ([]string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey), nil
	case ProviderGemini:
		client, err := NewGeminiClient(ctx, config, apiKey)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderAnthropic:
		return NewAnthropicClient(config, apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}

// splitMessages separates the system instruction from the remaining turns.
// Multiple system messages are joined with blank lines.
func splitMessages(messages []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
