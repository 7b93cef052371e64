package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusTooManyRequests, KindQuota},
		{http.StatusInternalServerError, KindTransport},
		{http.StatusServiceUnavailable, KindTransport},
		{http.StatusBadRequest, KindUnknown},
		{http.StatusNotFound, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, kindFromStatus(tt.status))
		})
	}
}

func TestKindFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"empty completion", ErrEmptyCompletion, KindResponse},
		{"quota", errors.New("rpc error: code = ResourceExhausted desc = quota exceeded"), KindQuota},
		{"bad key", errors.New("googleapi: API key not valid"), KindAuth},
		{"refused", errors.New("dial tcp: connection refused"), KindTransport},
		{"stream cut", fmt.Errorf("reading body: %w", io.ErrUnexpectedEOF), KindTransport},
		{"closed body", fmt.Errorf("decode: %w", io.EOF), KindTransport},
		{"word containing eof", errors.New("invalid value for field thereof"), KindUnknown},
		{"unrecognised", errors.New("something odd"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kindFromError(tt.err))
		})
	}
}

func TestAPICallError(t *testing.T) {
	cause := errors.New("boom")
	err := &APICallError{Provider: ProviderOpenAI, Kind: KindTransport, Message: "failed", Cause: cause}

	assert.Equal(t, "openai API call failed (transport): failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	noCause := &APICallError{Provider: ProviderGemini, Kind: KindAuth, Message: "denied"}
	assert.Equal(t, "gemini API call failed (auth): denied", noCause.Error())
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(context.Canceled))
	assert.True(t, IsRetryable(&APICallError{Kind: KindTransport}))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", &APICallError{Kind: KindQuota})))
	assert.False(t, IsRetryable(&APICallError{Kind: KindAuth}))
	assert.False(t, IsRetryable(&APICallError{Kind: KindResponse}))
}
