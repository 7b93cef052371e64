// Package tailoring builds the résumé-synthesis prompt and runs the generation step.
package tailoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/prompts"
)

const promptFile = "resume.json"

// ErrEmptyInput is returned when either input text is blank.
var ErrEmptyInput = errors.New("master resume and job descriptions must be non-empty")

// SystemPrompt returns the system-role instruction for résumé synthesis
func SystemPrompt() string {
	return prompts.MustGet(promptFile, "system")
}

// BuildResumePrompt embeds the master résumé and job descriptions verbatim in the
// ATS-optimization instructions.
func BuildResumePrompt(masterResume, jobDescriptions string) string {
	return prompts.Format(prompts.MustGet(promptFile, "instructions"), map[string]string{
		"MasterResume":    masterResume,
		"JobDescriptions": jobDescriptions,
	})
}

// GenerateResume asks the model for a résumé tailored to the job descriptions
func GenerateResume(ctx context.Context, client llm.Client, model, masterResume, jobDescriptions string) (string, error) {
	if strings.TrimSpace(masterResume) == "" || strings.TrimSpace(jobDescriptions) == "" {
		return "", ErrEmptyInput
	}

	messages := llm.Conversation(SystemPrompt(), BuildResumePrompt(masterResume, jobDescriptions))
	text, err := client.Complete(ctx, model, messages)
	if err != nil {
		return "", fmt.Errorf("resume synthesis failed: %w", err)
	}

	text = llm.CleanCompletion(text)
	if text == "" {
		return "", fmt.Errorf("resume synthesis failed: %w", llm.ErrEmptyCompletion)
	}
	return text, nil
}
