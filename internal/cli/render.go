package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spent/internal/view"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int  // optional column widths, auto-calculated if nil
	Right   []bool // right-align column i; nil right-aligns all but the first
}

func (t Table) rightAligned(i int) bool {
	if t.Right == nil {
		return i > 0
	}
	return i < len(t.Right) && t.Right[i]
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 45
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

func ruleLine(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
}

// RenderTable renders a bordered table with headers and rows. A row holding
// the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if w := lipgloss.Width(h); w > widths[i] {
				widths[i] = w
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if w := lipgloss.Width(cell); i < numCols && w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	ruleLine(&b, widths, "╭", "┬", "╮")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(pad(h, widths[i], t.rightAligned(i))))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		ruleLine(&b, widths, "├", "┼", "┤")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			ruleLine(&b, widths, "├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(pad(cell, widths[i], t.rightAligned(i))))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	ruleLine(&b, widths, "╰", "┴", "╯")

	return b.String()
}

func pad(cell string, w int, right bool) string {
	gap := w - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	if right {
		return " " + strings.Repeat(" ", gap) + cell + " "
	}
	return " " + cell + strings.Repeat(" ", gap) + " "
}

// RenderList renders the expense table with a total row, or the placeholder
// when there is nothing to show.
func RenderList(lv view.ListView) string {
	if lv.Empty {
		return "  " + mutedStyle.Render(lv.Placeholder) + "\n"
	}

	rows := make([][]string, 0, len(lv.Rows)+2)
	for _, r := range lv.Rows {
		rows = append(rows, []string{fmt.Sprintf("%d", r.ID), r.Category, r.Amount})
	}
	rows = append(rows, []string{"---"}, []string{"", "Total", lv.Total})

	return RenderTable(Table{
		Headers: []string{"ID", "Category", "Amount"},
		Rows:    rows,
		Right:   []bool{false, false, true},
	})
}

// RenderShareBar renders one horizontal bar of a proportional chart in the
// slice's color.
func RenderShareBar(value, total float64, color string, maxWidth int) string {
	if total <= 0 || maxWidth <= 0 {
		return ""
	}
	barLen := int(value / total * float64(maxWidth))
	if barLen < 1 && value > 0 {
		barLen = 1
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", barLen))
	return bar + dimStyle.Render(strings.Repeat("░", maxWidth-barLen))
}

// RenderChart renders one line per category: a colored bar sized by share
// followed by the slice tooltip. Nothing is rendered for a hidden chart.
func RenderChart(cv view.ChartView, barWidth int) string {
	if !cv.Visible {
		return ""
	}
	var b strings.Builder
	for _, s := range cv.Slices {
		b.WriteString("  ")
		b.WriteString(RenderShareBar(s.Value, cv.Total, s.Color, barWidth))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(s.Tooltip))
		b.WriteString("\n")
	}
	return b.String()
}
