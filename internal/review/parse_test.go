package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleFeedback = `Here is my evaluation.

**Missing Skills/Experience:**
- AWS Lambda
- Terraform

**Suggested Questions for Resume Improvement:**
1. Have you deployed services on AWS?
2. Which IaC tools have you used?
- Did you lead a team?

**Strengths in Resume:**
* Strong Python background
• Quantified achievements
`

func TestParseFeedback(t *testing.T) {
	fb := ParseFeedback(sampleFeedback)

	assert.Equal(t, []string{"AWS Lambda", "Terraform"}, fb.Missing)
	assert.Equal(t, []string{
		"Have you deployed services on AWS?",
		"Which IaC tools have you used?",
		"Did you lead a team?",
	}, fb.Questions)
	assert.Equal(t, []string{"Strong Python background", "Quantified achievements"}, fb.Strengths)
}

func TestParseFeedback_PlainHeadings(t *testing.T) {
	text := "Missing Skills/Experience:\n- Go\n### Strengths in Resume\n- Clear layout\n"

	fb := ParseFeedback(text)

	assert.Equal(t, []string{"Go"}, fb.Missing)
	assert.Empty(t, fb.Questions)
	assert.Equal(t, []string{"Clear layout"}, fb.Strengths)
}

func TestParseFeedback_NoHeadings(t *testing.T) {
	fb := ParseFeedback("Looks great overall.")

	assert.Empty(t, fb.Missing)
	assert.Empty(t, fb.Questions)
	assert.Empty(t, fb.Strengths)
}

func TestHasAllSections(t *testing.T) {
	assert.True(t, HasAllSections(sampleFeedback))
	assert.False(t, HasAllSections("**Missing Skills/Experience:**\n- Go"))
}

func TestParseFeedback_KeepsLeadingNumbersInText(t *testing.T) {
	fb := ParseFeedback(HeadingStrengths + "\n- 5 years of Python\n2) 3 shipped products\n")

	assert.Equal(t, []string{"5 years of Python", "3 shipped products"}, fb.Strengths)
}

func TestParseFeedback_InlineHeadingText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		missing   []string
		questions []string
		strengths []string
	}{
		{
			name:      "bold heading with text",
			input:     "**Missing Skills/Experience:**\n- A\n**Suggested Questions for Resume Improvement:**\n- Q1\n**Strengths in Resume:** Strong Python",
			missing:   []string{"A"},
			questions: []string{"Q1"},
			strengths: []string{"Strong Python"},
		},
		{
			name:    "plain heading with text then list",
			input:   "missing skills/experience: Kubernetes\n- Terraform",
			missing: []string{"Kubernetes", "Terraform"},
		},
		{
			name:      "sentence starting with heading words stays an item",
			input:     "**Strengths in Resume:**\n- Strengths in resume are well quantified",
			strengths: []string{"Strengths in resume are well quantified"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := ParseFeedback(tt.input)

			assert.Equal(t, tt.missing, fb.Missing)
			assert.Equal(t, tt.questions, fb.Questions)
			assert.Equal(t, tt.strengths, fb.Strengths)
		})
	}
}
