package components

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestAllocateCellsSumsToWidth(t *testing.T) {
	tests := []struct {
		values []float64
		width  int
	}{
		{[]float64{1, 1, 1}, 10},
		{[]float64{12.25, 5.5}, 40},
		{[]float64{0.01, 1000}, 20},
		{[]float64{3, 3, 3, 3, 3, 3, 3}, 50},
	}
	for _, tt := range tests {
		sum := 0
		for _, c := range AllocateCells(tt.values, tt.width) {
			sum += c
		}
		if sum != tt.width {
			t.Fatalf("AllocateCells(%v, %d) sums to %d", tt.values, tt.width, sum)
		}
	}
}

func TestAllocateCellsProportional(t *testing.T) {
	got := AllocateCells([]float64{3, 1}, 8)
	if got[0] != 6 || got[1] != 2 {
		t.Fatalf("AllocateCells([3 1], 8) = %v, want [6 2]", got)
	}

	// Equal remainders: earlier slices get the extra cell.
	got = AllocateCells([]float64{1, 1, 1}, 10)
	if got[0] != 4 || got[1] != 3 || got[2] != 3 {
		t.Fatalf("AllocateCells([1 1 1], 10) = %v, want [4 3 3]", got)
	}
}

func TestAllocateCellsEmpty(t *testing.T) {
	for _, c := range AllocateCells([]float64{0, 0}, 10) {
		if c != 0 {
			t.Fatal("zero values should get no cells")
		}
	}
	if got := AllocateCells(nil, 10); len(got) != 0 {
		t.Fatalf("AllocateCells(nil) = %v", got)
	}
}

func TestAllocateCellsNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"overflowing sum", []float64{1e308, 1e308}},
		{"infinite value", []float64{math.Inf(1), 5}},
		{"nan value", []float64{math.NaN(), 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, c := range AllocateCells(tt.values, 30) {
				if c < 0 {
					t.Fatalf("cells[%d] = %d, want non-negative", i, c)
				}
			}
		})
	}

	// An overflowing total allocates nothing rather than garbage.
	for i, c := range AllocateCells([]float64{1e308, 1e308}, 30) {
		if c != 0 {
			t.Fatalf("cells[%d] = %d, want 0", i, c)
		}
	}
}

func TestProportionChartOverflowDoesNotPanic(t *testing.T) {
	format := func(_ int, label string, _ float64) string { return label }
	out := ProportionChart([]string{"a", "b"}, []float64{1e308, 1e308},
		[]string{"#FF6384", "#36A2EB"}, format, 40)
	if !strings.Contains(out, "a") {
		t.Fatalf("legend missing from %q", out)
	}
}

func TestProportionChartEmpty(t *testing.T) {
	if got := ProportionChart(nil, nil, nil, nil, 40); got != "" {
		t.Fatalf("empty chart rendered %q", got)
	}
}

func TestProportionChartLegend(t *testing.T) {
	labels := []string{"food", "travel"}
	values := []float64{12.25, 5.5}
	colors := []string{"#FF6384", "#36A2EB"}
	format := func(i int, label string, _ float64) string {
		return []string{"food: $12.25 (69%)", "travel: $5.50 (31%)"}[i]
	}

	out := ProportionChart(labels, values, colors, format, 60)
	lines := strings.Split(out, "\n")
	// two bar rows, blank line, one legend line per slice
	if len(lines) != 5 {
		t.Fatalf("chart has %d lines, want 5:\n%s", len(lines), out)
	}
	if w := lipgloss.Width(lines[0]); w != 60 {
		t.Fatalf("bar width = %d, want 60", w)
	}
	if !strings.Contains(lines[3], "food: $12.25 (69%)") {
		t.Fatalf("legend line missing food: %q", lines[3])
	}
	if !strings.Contains(lines[4], "travel: $5.50 (31%)") {
		t.Fatalf("legend line missing travel: %q", lines[4])
	}
}
