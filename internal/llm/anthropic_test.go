package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicComplete_Success(t *testing.T) {
	var gotPayload map[string]any
	var gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Api-Key")
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "msg_1",
			"type":          "message",
			"role":          "assistant",
			"model":         "claude-sonnet-4-5",
			"content":       []map[string]any{{"type": "text", "text": "critique"}},
			"stop_reason":   "end_turn",
			"stop_sequence": nil,
			"usage":         map[string]any{"input_tokens": 10, "output_tokens": 2},
		})
	}))
	t.Cleanup(srv.Close)

	client := NewAnthropicClient(&Config{Provider: ProviderAnthropic, BaseURL: srv.URL}, "test-key")
	got, err := client.Complete(context.Background(), "claude-sonnet-4-5", Conversation("system text", "user text"))
	require.NoError(t, err)
	assert.Equal(t, "critique", got)

	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "claude-sonnet-4-5", gotPayload["model"])

	system, ok := gotPayload["system"].([]any)
	require.True(t, ok)
	require.Len(t, system, 1)
	assert.Equal(t, "system text", system[0].(map[string]any)["text"])

	messages, ok := gotPayload["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])
}

func TestAnthropicComplete_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "authentication_error", "message": "invalid x-api-key"},
		})
	}))
	t.Cleanup(srv.Close)

	client := NewAnthropicClient(&Config{Provider: ProviderAnthropic, BaseURL: srv.URL}, "bad-key")
	_, err := client.Complete(context.Background(), "claude-sonnet-4-5", Conversation("s", "u"))
	require.Error(t, err)

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, ProviderAnthropic, apiErr.Provider)
	assert.Equal(t, KindAuth, apiErr.Kind)
	assert.False(t, apiErr.Retryable())
}
