// Package view projects expense state into display-ready models. Nothing in
// here performs I/O or touches the Store; surfaces render the result.
package view

import (
	"fmt"
	"math"

	"github.com/theirongolddev/spent/internal/model"
)

// DefaultCurrency is the amount prefix used when none is configured.
const DefaultCurrency = "$"

// Placeholder is shown instead of rows when there are no expenses.
const Placeholder = "No expenses added yet"

// Palette is the fixed slice color sequence. The Nth distinct category gets
// Palette[N mod len(Palette)].
var Palette = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
	"#FF9F40", "#8AC249", "#EA526F", "#25CCF7", "#FD7272",
	"#58B19F", "#182C61", "#6D214F", "#2C3A47", "#B33771",
}

// ColorAt returns the palette color for the i-th category.
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// FormatAmount renders v with exactly two decimals behind the currency prefix.
func FormatAmount(currency string, v float64) string {
	return fmt.Sprintf("%s%.2f", currency, v)
}

// Row is one rendered expense.
type Row struct {
	ID        int64
	Category  string
	Amount    string
	DeleteKey int64 // id passed back by the delete affordance
}

// ListView is the tabular presentation.
type ListView struct {
	Rows        []Row
	Empty       bool
	Placeholder string
	Total       string
	TotalValue  float64
}

// Slice is one category in the proportional chart.
type Slice struct {
	Label   string
	Value   float64
	Color   string
	Percent int
	Tooltip string
}

// ChartView is the proportional chart dataset. Visible is false when there
// is nothing to draw; surfaces must clear any previous chart in that case.
type ChartView struct {
	Visible bool
	Slices  []Slice
	Total   float64
}

// Model is everything a surface needs for one full render.
type Model struct {
	List  ListView
	Chart ChartView
}

// Source is the read side of the expense store.
type Source interface {
	List() []model.Expense
	Total() float64
	TotalsByCategory() []model.CategoryTotal
}

// Build renders a fresh model from src.
func Build(src Source, currency string) Model {
	return Model{
		List:  BuildList(src.List(), src.Total(), currency),
		Chart: BuildChart(src.TotalsByCategory(), currency),
	}
}

// BuildList produces one row per expense in order, or the placeholder.
func BuildList(expenses []model.Expense, total float64, currency string) ListView {
	lv := ListView{
		Total:      FormatAmount(currency, total),
		TotalValue: total,
	}
	if len(expenses) == 0 {
		lv.Empty = true
		lv.Placeholder = Placeholder
		return lv
	}

	lv.Rows = make([]Row, 0, len(expenses))
	for _, e := range expenses {
		lv.Rows = append(lv.Rows, Row{
			ID:        e.ID,
			Category:  e.Category,
			Amount:    FormatAmount(currency, e.Amount),
			DeleteKey: e.ID,
		})
	}
	return lv
}

// BuildChart produces one slice per category in emission order.
func BuildChart(totals []model.CategoryTotal, currency string) ChartView {
	if len(totals) == 0 {
		return ChartView{}
	}

	var grand float64
	for _, ct := range totals {
		grand += ct.Amount
	}

	cv := ChartView{
		Visible: true,
		Slices:  make([]Slice, 0, len(totals)),
		Total:   grand,
	}
	for i, ct := range totals {
		pct := Percent(ct.Amount, grand)
		cv.Slices = append(cv.Slices, Slice{
			Label:   ct.Category,
			Value:   ct.Amount,
			Color:   ColorAt(i),
			Percent: pct,
			Tooltip: SliceLabel(currency, ct.Category, ct.Amount, pct),
		})
	}
	return cv
}

// Percent returns v as a whole-number share of total, rounded half away
// from zero.
func Percent(v, total float64) int {
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return 0
	}
	p := math.Round(v / total * 100)
	if math.IsInf(p, 0) || math.IsNaN(p) {
		return 0
	}
	return int(p)
}

// SliceLabel formats "<category>: $<amount> (<pct>%)".
func SliceLabel(currency, category string, amount float64, pct int) string {
	return fmt.Sprintf("%s: %s (%d%%)", category, FormatAmount(currency, amount), pct)
}

// Labels returns the slice labels in order.
func (c ChartView) Labels() []string {
	out := make([]string, len(c.Slices))
	for i, s := range c.Slices {
		out[i] = s.Label
	}
	return out
}

// Values returns the slice values in order.
func (c ChartView) Values() []float64 {
	out := make([]float64, len(c.Slices))
	for i, s := range c.Slices {
		out[i] = s.Value
	}
	return out
}

// Colors returns the slice colors in order.
func (c ChartView) Colors() []string {
	out := make([]string, len(c.Slices))
	for i, s := range c.Slices {
		out[i] = s.Color
	}
	return out
}
