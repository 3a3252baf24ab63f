package components

import (
	"strings"

	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Pane is a focusable region of the screen listed in the pane bar.
type Pane struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Panes defines the focusable panes in display order.
var Panes = []Pane{
	{Name: "Add", Key: 'a', KeyPos: 0},
	{Name: "Expenses", Key: 'e', KeyPos: 0},
}

func renderPane(p Pane, active bool) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceBright).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	padStyle := lipgloss.NewStyle().Background(t.Surface)

	if active {
		return activeStyle.Render(p.Name)
	}

	// Render with highlighted shortcut key
	var inner string
	if p.KeyPos >= 0 && p.KeyPos < len(p.Name) {
		before := p.Name[:p.KeyPos]
		key := string(p.Name[p.KeyPos])
		after := p.Name[p.KeyPos+1:]
		inner = inactiveStyle.Render(before) +
			dimKeyStyle.Render("[") + keyStyle.Render(key) + dimKeyStyle.Render("]") +
			inactiveStyle.Render(after)
	} else {
		inner = inactiveStyle.Render(p.Name) +
			dimKeyStyle.Render("[") + keyStyle.Render(string(p.Key)) + dimKeyStyle.Render("]")
	}
	return padStyle.Render(" ") + inner + padStyle.Render(" ")
}

// PaneVisualWidth returns the rendered width of p in the pane bar.
func PaneVisualWidth(p Pane, active bool) int {
	return lipgloss.Width(renderPane(p, active))
}

// RenderPaneBar renders the pane bar with the given active index, padded to width.
func RenderPaneBar(activeIdx, width int) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	parts := make([]string, 0, len(Panes))
	for i, p := range Panes {
		parts = append(parts, renderPane(p, i == activeIdx))
	}
	bar := strings.Join(parts, sep)

	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(bar)
}

// PaneIdxByKey returns the pane index for a given key press, or -1.
func PaneIdxByKey(key rune) int {
	for i, p := range Panes {
		if p.Key == key {
			return i
		}
	}
	return -1
}
