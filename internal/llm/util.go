package llm

import (
	"regexp"
	"strings"
)

// fenceInfo matches the language tag that may follow an opening code fence.
var fenceInfo = regexp.MustCompile(`^[a-z0-9_+-]{1,15}$`)

// CleanCompletion trims whitespace and removes a markdown code fence wrapping the
// whole completion. Models often fence plain-text documents even when told not to.
// Only a lowercase tag on the opening fence line is dropped; any other text there
// belongs to the document.
func CleanCompletion(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}

	inner := strings.TrimPrefix(text, "```")
	inner = strings.TrimSuffix(inner, "```")

	if idx := strings.Index(inner, "\n"); idx >= 0 {
		info := strings.TrimSpace(inner[:idx])
		if info == "" || fenceInfo.MatchString(info) {
			inner = inner[idx+1:]
		}
	}

	return strings.TrimSpace(inner)
}
