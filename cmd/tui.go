package cmd

import (
	"fmt"

	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/tui"
	"github.com/theirongolddev/spent/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive expense screen",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	screen := tui.NewScreen()
	s, err := openSession(cmd.Context(), screen)
	if err != nil {
		return err
	}
	defer s.Close()

	theme.SetActive(s.cfg.Appearance.Theme)

	app := tui.NewApp(s.ctrl, screen, !config.Exists())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
