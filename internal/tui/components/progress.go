package components

import (
	"fmt"

	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a solid bar filled to pct (0-1) in color, followed by the
// rounded percentage.
func ShareBar(pct float64, color string, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	barW := width - 5
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
