// Package observability provides console progress output and diagnostic logging for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/job-matcher/internal/review"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display per feedback section
	maxItemsToShow = 5
)

// Printer writes human-readable progress lines. Styling is dropped automatically
// when out is not a terminal.
type Printer struct {
	out io.Writer

	stepStyle  lipgloss.Style
	savedStyle lipgloss.Style
	warnStyle  lipgloss.Style
	titleStyle lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:        out,
		stepStyle:  r.NewStyle().Foreground(lipgloss.Color("39")),
		savedStyle: r.NewStyle().Foreground(lipgloss.Color("42")),
		warnStyle:  r.NewStyle().Foreground(lipgloss.Color("214")),
		titleStyle: r.NewStyle().Bold(true),
	}
}

// Step announces a pipeline step.
//
//nolint:errcheck // console output; errors are not recoverable
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintln(p.out, p.stepStyle.Render(fmt.Sprintf(format, args...)))
}

// Saved confirms that a document was written.
//
//nolint:errcheck // console output; errors are not recoverable
func (p *Printer) Saved(label, path string) {
	fmt.Fprintln(p.out, p.savedStyle.Render(fmt.Sprintf("%s saved: %s", label, path)))
}

// Warn reports a recoverable condition such as a missing input.
//
//nolint:errcheck // console output; errors are not recoverable
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints an unstyled line.
//
//nolint:errcheck // console output; errors are not recoverable
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // console output; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s%s │\n", p.titleStyle.Render(title), strings.Repeat(" ", max(0, boxWidth-4-len([]rune(title)))))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		runes := []rune(line)
		if len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
			runes = []rune(line)
		}
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", boxWidth-4-len(runes)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFeedback outputs the recruiter critique section by section.
func (p *Printer) PrintFeedback(fb review.Feedback) {
	if len(fb.Missing) == 0 && len(fb.Questions) == 0 && len(fb.Strengths) == 0 {
		return
	}

	var sb strings.Builder
	writeSection(&sb, "Missing skills/experience", fb.Missing)
	writeSection(&sb, "Questions for the candidate", fb.Questions)
	writeSection(&sb, "Strengths", fb.Strengths)

	p.printBox("RECRUITER FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSection(sb *strings.Builder, title string, items []string) {
	fmt.Fprintf(sb, "%s (%d):\n", title, len(items))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > maxItemsToShow {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-maxItemsToShow)
	}
	sb.WriteString("\n")
}

// PrintModels lists the models available from a provider, one per line.
func (p *Printer) PrintModels(provider string, models []string) {
	p.Step("Models available from %s (%d):", provider, len(models))
	for _, m := range models {
		p.Info("  %s", m)
	}
}
