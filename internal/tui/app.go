// Package tui provides the interactive Bubble Tea screen for spent.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/controller"
	"github.com/theirongolddev/spent/internal/tui/components"
	"github.com/theirongolddev/spent/internal/tui/theme"
	"github.com/theirongolddev/spent/internal/view"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusCategory focusArea = iota
	focusAmount
	focusList
	focusCount // sentinel
)

const (
	paneAdd  = 0
	paneList = 1
)

// App is the root Bubble Tea model.
type App struct {
	ctrl   *controller.Controller
	screen *Screen
	keys   keyMap

	// Entry form
	category textinput.Model
	amount   textinput.Model

	// UI state
	focus    focusArea
	cursor   int
	width    int
	height   int
	showHelp bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 60
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5 // minimum content area height
	minListRows      = 3
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func newEntryInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30
	ti.Prompt = ""
	return ti
}

// NewApp creates the screen model. ctrl must render to screen. When
// needSetup is set, the setup form is shown before the expense screen.
func NewApp(ctrl *controller.Controller, screen *Screen, needSetup bool) App {
	a := App{
		ctrl:      ctrl,
		screen:    screen,
		keys:      newKeyMap(),
		category:  newEntryInput("e.g. groceries", 64),
		amount:    newEntryInput("0.00", 16),
		needSetup: needSetup,
	}
	a.category.Focus()

	if needSetup {
		vals := SetupValuesFrom(loadConfigOrDefault())
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals, false)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion, // Enable mouse support
		textinput.Blink,
	}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.screen.notice != nil || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.focus == focusList && a.cursor > 0 {
				a.cursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.focus == focusList && a.cursor < len(a.rows())-1 {
				a.cursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Pane bar is the first line
			if msg.Y == 0 {
				switch a.paneAtX(msg.X) {
				case paneAdd:
					return a.setFocus(focusCategory)
				case paneList:
					return a.setFocus(focusList)
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		// Global: quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// A blocking notice swallows the key that dismisses it
		if a.screen.notice != nil {
			a.screen.dismiss()
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keys.NextFocus):
			return a.setFocus((a.focus + 1) % focusCount)
		case key.Matches(msg, a.keys.PrevFocus):
			return a.setFocus((a.focus + focusCount - 1) % focusCount)
		}

		if a.focus == focusList {
			return a.updateList(msg)
		}
		return a.updateForm(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Cursor blink for the focused input
	return a.forwardToInput(msg)
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Submit):
		return a.submit()
	case key.Matches(msg, a.keys.Back):
		return a.setFocus(focusList)
	}
	return a.forwardToInput(msg)
}

func (a App) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.focus {
	case focusCategory:
		a.category, cmd = a.category.Update(msg)
	case focusAmount:
		a.amount, cmd = a.amount.Update(msg)
	}
	return a, cmd
}

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.rows()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(rows)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
	case key.Matches(msg, a.keys.Bottom):
		a.cursor = len(rows) - 1
	case key.Matches(msg, a.keys.Delete):
		if len(rows) > 0 && a.cursor < len(rows) {
			a.screen.clearWarning()
			_, _ = a.ctrl.Delete(context.Background(), rows[a.cursor].DeleteKey)
		}
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		if components.PaneIdxByKey(msg.Runes[0]) == paneAdd {
			return a.setFocus(focusCategory)
		}
	}
	a.clampCursor()
	return a, nil
}

// submit hands the raw form text to the controller. Only a successful add
// clears the form; rejected input stays for correction.
func (a App) submit() (tea.Model, tea.Cmd) {
	a.screen.clearWarning()
	_ = a.ctrl.Submit(context.Background(), a.category.Value(), a.amount.Value())
	if a.screen.takeCleared() {
		a.category.Reset()
		a.amount.Reset()
		a.clampCursor()
		return a.setFocus(focusCategory)
	}
	return a, nil
}

func (a App) setFocus(f focusArea) (tea.Model, tea.Cmd) {
	a.focus = f
	a.category.Blur()
	a.amount.Blur()

	var cmd tea.Cmd
	switch f {
	case focusCategory:
		cmd = a.category.Focus()
	case focusAmount:
		cmd = a.amount.Focus()
	}
	a.clampCursor()
	return a, cmd
}

func (a *App) clampCursor() {
	n := len(a.rows())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a App) rows() []view.Row {
	return a.screen.model.List.Rows
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, textinput.Blink
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, textinput.Blink
	}

	return a, cmd
}

// applySetup saves the first-run answers and re-renders with them. A failed
// save keeps the choices for this session only.
func (a App) applySetup() {
	cfg := loadConfigOrDefault()
	a.setupVals.Apply(&cfg)
	if err := config.Save(cfg); err != nil {
		a.screen.warning = "Could not save settings: " + err.Error()
	}
	theme.SetActive(cfg.Appearance.Theme)
	a.ctrl.SetCurrency(cfg.Display.Currency)
	a.ctrl.Refresh()
}

func (a App) activePane() int {
	if a.focus == focusList {
		return paneList
	}
	return paneAdd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.screen.notice != nil {
		return a.viewNotice()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  spent needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewNotice() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)

	msgStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	body := msgStyle.Render(a.screen.notice.Message) + "\n\n" +
		dimStyle.Render("Press any key to continue")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	// Help overlay with accent border
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Entry form", a.keys.formBindings()},
		{"Expense list", a.keys.listBindings()},
	}
	for i, sec := range sections {
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			h := bind.Help()
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", h.Key)),
				descStyle.Render(h.Desc))
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	bindings := []key.Binding{a.keys.NextFocus, a.keys.Submit}
	if a.focus == focusList {
		bindings = []key.Binding{a.keys.NextFocus, a.keys.Delete, a.keys.Help, a.keys.Quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, bind := range bindings {
		h := bind.Help()
		parts = append(parts, "["+h.Key+"]"+h.Desc)
	}
	return strings.Join(parts, "  ")
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height
	m := a.screen.model

	// 1. Header and status bar
	header := components.RenderPaneBar(a.activePane(), w)
	statusBar := components.RenderStatusBar(w, a.hints(), a.screen.statusWarning())

	// 2. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 3. Cards
	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Total", Value: m.List.Total},
		{Label: "Expenses", Value: strconv.Itoa(len(m.List.Rows))},
		{Label: "Categories", Value: strconv.Itoa(len(m.Chart.Slices))},
	}, cw)

	var content string
	if a.isCompactLayout() || !m.Chart.Visible {
		form := a.renderForm(cw)
		chart := a.renderChart(m.Chart, cw)
		used := lipgloss.Height(metrics) + lipgloss.Height(form) + lipgloss.Height(chart)
		list := a.renderList(m.List, cw, contentH-used)
		parts := []string{metrics, form, list}
		if chart != "" {
			parts = append(parts, chart)
		}
		content = lipgloss.JoinVertical(lipgloss.Left, parts...)
	} else {
		cols := components.LayoutRow(cw, 2)
		form := a.renderForm(cols[0])
		used := lipgloss.Height(metrics) + lipgloss.Height(form)
		left := lipgloss.JoinVertical(lipgloss.Left, form, a.renderList(m.List, cols[0], contentH-used))
		right := a.renderChart(m.Chart, cols[1])
		content = lipgloss.JoinVertical(lipgloss.Left, metrics, components.CardRow([]string{left, right}))
	}

	// 4. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 5. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 6. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderForm(outerWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(10)
	activeLabelStyle := labelStyle.Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	inputW := components.CardInnerWidth(outerWidth) - 11
	if inputW < 8 {
		inputW = 8
	}
	a.category.Width = inputW
	a.amount.Width = inputW

	label := func(text string, f focusArea) string {
		if a.focus == f {
			return activeLabelStyle.Render(text)
		}
		return labelStyle.Render(text)
	}

	var b strings.Builder
	b.WriteString(label("Category", focusCategory))
	b.WriteString(" ")
	b.WriteString(a.category.View())
	b.WriteString("\n")
	b.WriteString(label("Amount", focusAmount))
	b.WriteString(" ")
	b.WriteString(a.amount.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter to add · tab to switch field"))

	return components.ContentCard("Add Expense", b.String(), outerWidth, a.focus != focusList)
}

// renderList draws the expense rows. height is the outer height available
// to the card; the row window follows the cursor.
func (a App) renderList(lv view.ListView, outerWidth, height int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerWidth)
	focused := a.focus == focusList

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	if lv.Empty {
		return components.ContentCard("Expenses", dimStyle.Render(lv.Placeholder), outerWidth, focused)
	}

	// border (2) + title (1) + separator (1) + total (1)
	maxRows := height - 5
	if maxRows < minListRows {
		maxRows = minListRows
	}

	amountW := 0
	for _, r := range lv.Rows {
		if w := lipgloss.Width(r.Amount); w > amountW {
			amountW = w
		}
	}
	if tw := lipgloss.Width(lv.Total); tw > amountW {
		amountW = tw
	}
	const deleteW = 3
	catW := innerW - amountW - deleteW - 6 // cursor marker + gaps
	if catW < 6 {
		catW = 6
	}

	start := 0
	if a.cursor >= maxRows {
		start = a.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(lv.Rows) {
		end = len(lv.Rows)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		r := lv.Rows[i]
		selected := focused && i == a.cursor

		bg := t.Surface
		marker := "  "
		if selected {
			bg = t.SurfaceBright
			marker = "▸ "
		}
		rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
		amountStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(bg)
		delStyle := lipgloss.NewStyle().Foreground(t.Red).Background(bg)
		if !selected {
			delStyle = delStyle.Foreground(t.TextDim)
		}

		cat := truncStr(r.Category, catW)
		b.WriteString(rowStyle.Render(marker + cat + strings.Repeat(" ", catW-lipgloss.Width(cat)) + "  "))
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, r.Amount)))
		b.WriteString(rowStyle.Render("  "))
		b.WriteString(delStyle.Render("[x]"))
		b.WriteString("\n")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	more := ""
	if len(lv.Rows) > maxRows {
		more = fmt.Sprintf(" (%d-%d of %d)", start+1, end, len(lv.Rows))
	}
	b.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")
	totalLabel := "  Total" + more
	b.WriteString(labelStyle.Render(totalLabel + strings.Repeat(" ", max(0, catW+4-lipgloss.Width(totalLabel)))))
	b.WriteString(totalStyle.Render(fmt.Sprintf("%*s", amountW, lv.Total)))

	return components.ContentCard("Expenses", b.String(), outerWidth, focused)
}

func (a App) renderChart(cv view.ChartView, outerWidth int) string {
	if !cv.Visible {
		return ""
	}
	format := func(i int, _ string, _ float64) string {
		return cv.Slices[i].Tooltip
	}
	body := components.ProportionChart(cv.Labels(), cv.Values(), cv.Colors(), format,
		components.CardInnerWidth(outerWidth))
	return components.ContentCard("By Category", body, outerWidth, false)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// paneAtX returns the pane index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderPaneBar.
func (a App) paneAtX(x int) int {
	pos := 0
	active := a.activePane()
	for i, p := range components.Panes {
		paneW := components.PaneVisualWidth(p, i == active)

		if x >= pos && x < pos+paneW {
			return i
		}
		pos += paneW

		// Separator is one column between panes.
		if i < len(components.Panes)-1 {
			pos++
		}
	}
	return -1
}
