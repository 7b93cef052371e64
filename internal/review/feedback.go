// Package review builds the recruiter-critique prompt, runs the critique step and
// splits the answer into its headed sections for display.
package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/prompts"
)

const promptFile = "review.json"

// Section headings the critique must use, in order.
const (
	HeadingMissing   = "**Missing Skills/Experience:**"
	HeadingQuestions = "**Suggested Questions for Resume Improvement:**"
	HeadingStrengths = "**Strengths in Resume:**"
)

// Headings returns the three critique headings in the order the model is asked to emit them.
func Headings() []string {
	return []string{HeadingMissing, HeadingQuestions, HeadingStrengths}
}

// ErrEmptyInput is returned when the generated résumé or job descriptions are blank.
var ErrEmptyInput = errors.New("generated resume and job descriptions must be non-empty")

// SystemPrompt returns the system-role instruction for the recruiter critique
func SystemPrompt() string {
	return prompts.MustGet(promptFile, "system")
}

// BuildFeedbackPrompt embeds the generated résumé and job descriptions verbatim and
// prescribes the three-section answer format.
func BuildFeedbackPrompt(resume, jobDescriptions string) string {
	return prompts.Format(prompts.MustGet(promptFile, "instructions"), map[string]string{
		"Resume":           resume,
		"JobDescriptions":  jobDescriptions,
		"MissingHeading":   HeadingMissing,
		"QuestionsHeading": HeadingQuestions,
		"StrengthsHeading": HeadingStrengths,
	})
}

// ReviewResume asks the model to critique the résumé as a recruiter would
func ReviewResume(ctx context.Context, client llm.Client, model, resume, jobDescriptions string) (string, error) {
	if strings.TrimSpace(resume) == "" || strings.TrimSpace(jobDescriptions) == "" {
		return "", ErrEmptyInput
	}

	messages := llm.Conversation(SystemPrompt(), BuildFeedbackPrompt(resume, jobDescriptions))
	text, err := client.Complete(ctx, model, messages)
	if err != nil {
		return "", fmt.Errorf("recruiter review failed: %w", err)
	}

	text = llm.CleanCompletion(text)
	if text == "" {
		return "", fmt.Errorf("recruiter review failed: %w", llm.ErrEmptyCompletion)
	}
	return text, nil
}
