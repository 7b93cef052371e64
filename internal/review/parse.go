package review

import (
	"regexp"
	"strings"
)

var listMarker = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s*`)

// Feedback is the critique split into its headed sections.
// Sections the model omitted are left empty.
type Feedback struct {
	Missing   []string
	Questions []string
	Strengths []string
}

// HasAllSections reports whether every critique heading appears in text.
func HasAllSections(text string) bool {
	for _, heading := range Headings() {
		if !strings.Contains(text, heading) {
			return false
		}
	}
	return true
}

// ParseFeedback collects the list items under each heading. Lines before the first
// heading are ignored. Headings are matched with or without the bold markers, and
// text on the heading line itself becomes the section's first item.
func ParseFeedback(text string) Feedback {
	var fb Feedback
	var current *[]string

	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if target, rest := sectionFor(&fb, line); target != nil {
			current = target
			if rest != "" {
				*current = append(*current, rest)
			}
			continue
		}
		if current == nil {
			continue
		}

		item := strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if item != "" {
			*current = append(*current, item)
		}
	}

	return fb
}

// sectionFor returns the slice a heading line starts, or nil for non-heading lines.
// Text following the heading on the same line is returned as rest.
func sectionFor(fb *Feedback, line string) (target *[]string, rest string) {
	stripped := strings.TrimLeft(line, "*# ")
	sections := []struct {
		heading string
		target  *[]string
	}{
		{HeadingMissing, &fb.Missing},
		{HeadingQuestions, &fb.Questions},
		{HeadingStrengths, &fb.Strengths},
	}
	for _, s := range sections {
		key := headingKey(s.heading)
		if len(stripped) < len(key) || !strings.EqualFold(stripped[:len(key)], key) {
			continue
		}
		tail := stripped[len(key):]
		if tail != "" && tail[0] != ':' && tail[0] != '*' {
			continue
		}
		return s.target, strings.TrimSpace(strings.Trim(tail, "*: "))
	}
	return nil, ""
}

func headingKey(heading string) string {
	return strings.ToLower(strings.Trim(heading, "*#: "))
}
