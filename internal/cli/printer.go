package cli

import (
	"fmt"
	"io"

	"github.com/theirongolddev/spent/internal/controller"
	"github.com/theirongolddev/spent/internal/view"
)

// Printer is the surface used by one-shot commands. Renders are kept until
// the command prints them; notices go straight to the error stream.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	model  view.Model
}

// NewPrinter returns a Printer writing views to out and notices to errOut.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// Render implements controller.Surface.
func (p *Printer) Render(m view.Model) {
	p.model = m
}

// Notify implements controller.Surface.
func (p *Printer) Notify(n controller.Notice) {
	if n.Level == controller.NoticeBlocking {
		fmt.Fprintf(p.errOut, "  %s %s\n", errorStyle.Render("error:"), n.Message)
		return
	}
	fmt.Fprintf(p.errOut, "  %s %s\n", warnStyle.Render("warning:"), n.Message)
}

// ClearInput implements controller.Surface. There is no form to clear.
func (p *Printer) ClearInput() {}

// Model returns the last rendered view model.
func (p *Printer) Model() view.Model {
	return p.model
}

// PrintList writes the expense table.
func (p *Printer) PrintList() {
	fmt.Fprint(p.out, RenderList(p.model.List))
}

// PrintChart writes the per-category breakdown. An empty list prints the
// placeholder instead.
func (p *Printer) PrintChart(barWidth int) {
	if !p.model.Chart.Visible {
		fmt.Fprint(p.out, RenderList(p.model.List))
		return
	}
	fmt.Fprint(p.out, RenderChart(p.model.Chart, barWidth))
	fmt.Fprintf(p.out, "\n  %s %s\n", mutedStyle.Render("Total"), valueStyle.Render(p.model.List.Total))
}
