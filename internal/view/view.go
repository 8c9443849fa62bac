// Package view renders completion results for terminal display.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/koi-shell/koi/internal/completion"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	spanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// Render renders a suggestion list for the given line and cursor.
func Render(line string, cursor int, suggestions []completion.Suggestion) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Completions for %q at %d", line, cursor)))
	b.WriteString("\n")

	if len(suggestions) == 0 {
		b.WriteString(emptyStyle.Render("  no matches"))
		b.WriteString("\n")
		return b.String()
	}

	for _, s := range suggestions {
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(s.Value))
		b.WriteString(" ")
		b.WriteString(spanStyle.Render(fmt.Sprintf("[%d:%d)", s.Span.Start, s.Span.End)))
		b.WriteString("\n")
	}

	return b.String()
}
