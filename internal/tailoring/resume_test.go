package tailoring

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	response string
	err      error
	model    string
	messages []llm.Message
	calls    int
}

func (s *stubClient) Complete(_ context.Context, model string, messages []llm.Message) (string, error) {
	s.calls++
	s.model = model
	s.messages = messages
	return s.response, s.err
}

func (s *stubClient) ListModels(_ context.Context) ([]string, error) { return nil, nil }
func (s *stubClient) Close() error                                  { return nil }

func TestBuildResumePrompt_EmbedsInputsVerbatim(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		jobs   string
	}{
		{
			name:   "simple",
			resume: "Jane Doe, Software Engineer, 5 years Python",
			jobs:   "Seeking Senior Python Engineer with AWS experience",
		},
		{
			name:   "csv with quotes and unicode",
			resume: "name,role\n\"Zoë Müller\",\"Data Engineer, Berlin\"\n",
			jobs:   "Job 1: Kafka\n\nJob 2: Spark — 100% remote",
		},
		{
			name:   "placeholder-looking text",
			resume: "I literally wrote {{.JobDescriptions}} in my resume",
			jobs:   "Mentions {{.MasterResume}} too",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildResumePrompt(tt.resume, tt.jobs)
			assert.Contains(t, prompt, tt.resume)
			assert.Contains(t, prompt, tt.jobs)
		})
	}
}

func TestBuildResumePrompt_Instructions(t *testing.T) {
	prompt := BuildResumePrompt("resume", "jobs")

	assert.Contains(t, prompt, "ATS")
	assert.Contains(t, prompt, "Professional Summary, Skills, and Experience")
	assert.Contains(t, prompt, "measurable achievements")
	assert.Contains(t, prompt, "reverse-chronological order")
	assert.Contains(t, prompt, "job titles, company names, and dates")
	assert.Contains(t, prompt, "Never use tables, images, columns")
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildResumePrompt_Deterministic(t *testing.T) {
	assert.Equal(t, BuildResumePrompt("a", "b"), BuildResumePrompt("a", "b"))
}

func TestGenerateResume_SendsSystemAndUserMessages(t *testing.T) {
	client := &stubClient{response: "```\nTAILORED\n```"}

	text, err := GenerateResume(context.Background(), client, "gpt-4o", "master", "jobs")
	require.NoError(t, err)
	assert.Equal(t, "TAILORED", text)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "gpt-4o", client.model)
	require.Len(t, client.messages, 2)
	assert.Equal(t, llm.RoleSystem, client.messages[0].Role)
	assert.Equal(t, SystemPrompt(), client.messages[0].Content)
	assert.Equal(t, llm.RoleUser, client.messages[1].Role)
	assert.Equal(t, BuildResumePrompt("master", "jobs"), client.messages[1].Content)
}

func TestGenerateResume_EmptyInputSkipsCall(t *testing.T) {
	client := &stubClient{response: "unused"}

	_, err := GenerateResume(context.Background(), client, "gpt-4o", "  ", "jobs")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = GenerateResume(context.Background(), client, "gpt-4o", "master", "")
	assert.ErrorIs(t, err, ErrEmptyInput)

	assert.Equal(t, 0, client.calls)
}

func TestGenerateResume_PropagatesClientError(t *testing.T) {
	apiErr := &llm.APICallError{Provider: llm.ProviderOpenAI, Kind: llm.KindQuota, Message: "rate limited"}
	client := &stubClient{err: apiErr}

	_, err := GenerateResume(context.Background(), client, "gpt-4o", "master", "jobs")
	require.Error(t, err)

	var got *llm.APICallError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, llm.KindQuota, got.Kind)
}

func TestGenerateResume_EmptyCompletion(t *testing.T) {
	client := &stubClient{response: "   "}

	_, err := GenerateResume(context.Background(), client, "gpt-4o", "master", "jobs")
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}
