package components

import (
	"math"
	"sort"
	"strings"

	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// SliceFormatter returns the legend text for the i-th slice.
type SliceFormatter func(i int, label string, value float64) string

// ProportionChart renders a stacked bar where each slice occupies a share of
// width proportional to its value, followed by one legend line per slice.
// labels, values and colors are parallel. Nothing is rendered for an empty
// dataset.
func ProportionChart(labels []string, values []float64, colors []string, format SliceFormatter, width int) string {
	n := len(values)
	if n == 0 || len(labels) < n || len(colors) < n {
		return ""
	}
	if width < 10 {
		width = 10
	}
	t := theme.Active

	total := 0.0
	for _, v := range values {
		total += v
	}

	cells := AllocateCells(values, width)
	var bar strings.Builder
	for i, c := range cells {
		if c == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Background(t.Surface)
		bar.WriteString(style.Render(strings.Repeat("█", c)))
	}
	barLine := bar.String()

	if format == nil {
		format = func(_ int, label string, _ float64) string { return label }
	}
	texts := make([]string, n)
	textW := 0
	for i := range values {
		texts[i] = format(i, labels[i], values[i])
		if w := lipgloss.Width(texts[i]); w > textW {
			textW = w
		}
	}

	// swatch (2) + text + gap (2) + share bar
	shareW := width - textW - 4
	showShare := shareW >= 8
	if showShare && shareW > 30 {
		shareW = 30
	}

	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(barLine)
	b.WriteString("\n")
	b.WriteString(barLine)
	b.WriteString("\n\n")
	for i := range values {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Background(t.Surface).Render("■")
		b.WriteString(swatch)
		b.WriteString(spaceStyle.Render(" "))
		pad := textW - lipgloss.Width(texts[i])
		b.WriteString(textStyle.Render(texts[i]))
		if showShare {
			b.WriteString(spaceStyle.Render(strings.Repeat(" ", pad+2)))
			pct := 0.0
			if total > 0 && !math.IsInf(total, 0) && finitePositive(values[i]) {
				pct = values[i] / total
			}
			b.WriteString(ShareBar(pct, colors[i], shareW))
		}
		if i < n-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// AllocateCells splits width cells between values in proportion to their
// size using the largest-remainder method, so the result always sums to
// width when any value is positive. Ties go to the earlier slice.
func AllocateCells(values []float64, width int) []int {
	cells := make([]int, len(values))
	if width <= 0 {
		return cells
	}
	total := 0.0
	for _, v := range values {
		if finitePositive(v) {
			total += v
		}
	}
	if total <= 0 || math.IsInf(total, 0) {
		return cells
	}

	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, 0, len(values))
	used := 0
	for i, v := range values {
		if !finitePositive(v) {
			continue
		}
		exact := v / total * float64(width)
		cells[i] = int(exact)
		used += cells[i]
		rems = append(rems, rem{idx: i, frac: exact - float64(cells[i])})
	}

	sort.SliceStable(rems, func(i, j int) bool { return rems[i].frac > rems[j].frac })
	for k := 0; used < width && k < len(rems); k++ {
		cells[rems[k].idx]++
		used++
	}
	return cells
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
