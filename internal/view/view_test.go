package view

import (
	"math"
	"testing"

	"github.com/theirongolddev/spent/internal/model"
)

type fakeSource struct {
	expenses []model.Expense
}

func (f fakeSource) List() []model.Expense { return f.expenses }

func (f fakeSource) Total() float64 {
	var t float64
	for _, e := range f.expenses {
		t += e.Amount
	}
	return t
}

func (f fakeSource) TotalsByCategory() []model.CategoryTotal {
	idx := map[string]int{}
	var out []model.CategoryTotal
	for _, e := range f.expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, model.CategoryTotal{Category: e.Category})
		}
		out[i].Amount += e.Amount
	}
	return out
}

func TestBuild_EmptyIsPlaceholderWithoutChart(t *testing.T) {
	src := fakeSource{}
	for i := 0; i < 3; i++ {
		m := Build(src, DefaultCurrency)
		if !m.List.Empty || m.List.Placeholder != Placeholder {
			t.Fatalf("render %d: list = %+v, want placeholder", i, m.List)
		}
		if len(m.List.Rows) != 0 {
			t.Fatalf("render %d: rows = %d, want 0", i, len(m.List.Rows))
		}
		if m.List.Total != "$0.00" {
			t.Fatalf("render %d: Total = %q, want $0.00", i, m.List.Total)
		}
		if m.Chart.Visible || len(m.Chart.Slices) != 0 {
			t.Fatalf("render %d: chart = %+v, want hidden", i, m.Chart)
		}
	}
}

func TestBuildList_RowsInOrder(t *testing.T) {
	src := fakeSource{expenses: []model.Expense{
		{ID: 3, Category: "food", Amount: 10},
		{ID: 1, Category: "travel", Amount: 5.5},
		{ID: 2, Category: "food", Amount: 2.255},
	}}
	lv := Build(src, "$").List

	if lv.Empty {
		t.Fatal("Empty = true for a non-empty list")
	}
	want := []Row{
		{ID: 3, Category: "food", Amount: "$10.00", DeleteKey: 3},
		{ID: 1, Category: "travel", Amount: "$5.50", DeleteKey: 1},
		{ID: 2, Category: "food", Amount: "$2.25", DeleteKey: 2},
	}
	if len(lv.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(lv.Rows), len(want))
	}
	for i := range want {
		if lv.Rows[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, lv.Rows[i], want[i])
		}
	}
	if lv.Total != "$17.75" && lv.Total != "$17.76" {
		t.Fatalf("Total = %q", lv.Total)
	}
}

func TestBuildChart_SlicesAndTooltips(t *testing.T) {
	cv := BuildChart([]model.CategoryTotal{
		{Category: "food", Amount: 12.25},
		{Category: "travel", Amount: 5.50},
	}, "$")

	if !cv.Visible {
		t.Fatal("Visible = false")
	}
	if len(cv.Slices) != 2 {
		t.Fatalf("slices = %d, want 2", len(cv.Slices))
	}
	if cv.Slices[0].Tooltip != "food: $12.25 (69%)" {
		t.Fatalf("tooltip 0 = %q", cv.Slices[0].Tooltip)
	}
	if cv.Slices[1].Tooltip != "travel: $5.50 (31%)" {
		t.Fatalf("tooltip 1 = %q", cv.Slices[1].Tooltip)
	}
	if cv.Slices[0].Color != Palette[0] || cv.Slices[1].Color != Palette[1] {
		t.Fatalf("colors = %v", cv.Colors())
	}

	labels := cv.Labels()
	values := cv.Values()
	if labels[0] != "food" || labels[1] != "travel" || values[0] != 12.25 || values[1] != 5.5 {
		t.Fatalf("labels=%v values=%v", labels, values)
	}
}

func TestBuildChart_ColorsCycleAndAreStable(t *testing.T) {
	var totals []model.CategoryTotal
	for i := 0; i < len(Palette)+3; i++ {
		totals = append(totals, model.CategoryTotal{Category: string(rune('a' + i)), Amount: 1})
	}

	first := BuildChart(totals, "$").Colors()
	for run := 0; run < 3; run++ {
		again := BuildChart(totals, "$").Colors()
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: color %d = %s, want %s", run, i, again[i], first[i])
			}
		}
	}
	for i, c := range first {
		if c != Palette[i%len(Palette)] {
			t.Fatalf("color %d = %s, want %s", i, c, Palette[i%len(Palette)])
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		v, total float64
		want     int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{5, 0, 0},
		{10, 10, 100},
		{math.Inf(1), math.Inf(1), 0},
		{1, math.Inf(1), 0},
		{math.NaN(), 10, 0},
	}
	for _, tc := range cases {
		if got := Percent(tc.v, tc.total); got != tc.want {
			t.Fatalf("Percent(%v, %v) = %d, want %d", tc.v, tc.total, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount("€", 3); got != "€3.00" {
		t.Fatalf("FormatAmount = %q", got)
	}
	if got := FormatAmount("$", 1234.5); got != "$1234.50" {
		t.Fatalf("FormatAmount = %q", got)
	}
}
