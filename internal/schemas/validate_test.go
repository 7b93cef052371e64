package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_ConfigSchema(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantValid bool
		wantField string
	}{
		{
			name:      "empty object",
			document:  `{}`,
			wantValid: true,
		},
		{
			name: "full settings",
			document: `{
				"resume": "master_resume.csv",
				"jobs": "job_descriptions.txt",
				"resume_out": "out/resume.txt",
				"feedback_out": "out/feedback.txt",
				"provider": "anthropic",
				"model": "claude-sonnet-4-5",
				"api_key_env": "ANTHROPIC_API_KEY",
				"base_url": "https://api.example.com/v1",
				"max_retries": 3,
				"retry_delay_ms": 500,
				"max_tokens": 2048,
				"temperature": 0.2,
				"fail_on_missing": true,
				"verbose": false
			}`,
			wantValid: true,
		},
		{
			name:      "unknown provider",
			document:  `{"provider": "llama"}`,
			wantField: "provider",
		},
		{
			name:      "negative retries",
			document:  `{"max_retries": -1}`,
			wantField: "max_retries",
		},
		{
			name:      "wrong type",
			document:  `{"verbose": "yes"}`,
			wantField: "verbose",
		},
		{
			name:      "invalid env var name",
			document:  `{"api_key_env": "MY-KEY"}`,
			wantField: "api_key_env",
		},
		{
			name:      "unknown field",
			document:  `{"job_url": "https://example.com"}`,
			wantField: "(root)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(ConfigSchema(), []byte(tt.document))
			if tt.wantValid {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			require.NotEmpty(t, validationErr.Errors)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidateDocument_MalformedDocument(t *testing.T) {
	err := ValidateDocument(ConfigSchema(), []byte(`{ invalid json }`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateDocument_InvalidSchema(t *testing.T) {
	err := ValidateDocument([]byte(`{"type": 12}`), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "provider", Message: "must be one of the following"},
		{Field: "max_retries", Message: "must be >= 0"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed:")
	assert.Contains(t, msg, "1. provider: must be one of the following")
	assert.Contains(t, msg, "2. max_retries: must be >= 0")
}

func TestSchemaLoadError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &SchemaLoadError{Path: "x", Message: "m", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load schema x: m: boom", err.Error())
}
