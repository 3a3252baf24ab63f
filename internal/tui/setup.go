package tui

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/store"
	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	Theme    string
	Currency string
	Backend  string
}

// SetupValuesFrom seeds the form with the current configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:    cfg.Appearance.Theme,
		Currency: cfg.Display.Currency,
		Backend:  cfg.Storage.Backend,
	}
}

// Apply copies the answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	if c := strings.TrimSpace(v.Currency); c != "" {
		cfg.Display.Currency = c
	}
	if v.Backend != "" {
		cfg.Storage.Backend = v.Backend
	}
}

func validateCurrency(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("currency symbol is required")
	}
	if utf8.RuneCountInString(s) > 4 {
		return errors.New("use at most 4 characters")
	}
	return nil
}

// NewSetupForm builds the setup wizard. The storage question is only asked
// when withStorage is set, since the screen cannot switch backends while a
// list is open.
func NewSetupForm(vals *SetupValues, withStorage bool) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	fields := []huh.Field{
		huh.NewNote().
			Title("Welcome to spent").
			Description("Track where your money goes.\nA few choices and you are ready."),
		huh.NewSelect[string]().
			Title("Color theme").
			Options(themeOpts...).
			Value(&vals.Theme),
		huh.NewInput().
			Title("Currency symbol").
			Description("Shown in front of every amount.").
			Placeholder("$").
			Validate(validateCurrency).
			Value(&vals.Currency),
	}
	if withStorage {
		fields = append(fields, huh.NewSelect[string]().
			Title("Storage").
			Description("Where expenses are kept between runs.").
			Options(
				huh.NewOption("SQLite database", store.BackendSQLite),
				huh.NewOption("JSON file", store.BackendFile),
				huh.NewOption("Memory (nothing is saved)", store.BackendMemory),
			).
			Value(&vals.Backend))
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeCatppuccin())
}
