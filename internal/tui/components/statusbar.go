package components

import (
	"strings"

	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// an optional warning on the right.
func RenderStatusBar(width int, hints, warning string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	warnStyle := lipgloss.NewStyle().
		Foreground(t.Orange).
		Background(t.Surface).
		Bold(true)

	left := " " + hints
	right := ""
	if warning != "" {
		right = "! " + warning + " "
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		// Warning wins over hints when space runs out.
		left = ""
		padding = width - lipgloss.Width(right)
		if padding < 0 {
			padding = 0
		}
	}

	fill := lipgloss.NewStyle().Background(t.Surface)
	bar := style.Render(left) + fill.Render(strings.Repeat(" ", padding))
	if right != "" {
		bar += warnStyle.Render(right)
	}
	return bar
}
