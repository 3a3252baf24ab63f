package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/spent/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagBackend  string
	flagDataDir  string
	flagCurrency string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "spent",
	Short:        "Track expenses by category",
	Long:         "Record what you spend, see it in a list with a running total and a per-category breakdown.",
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errReported fails a command whose cause the Printer has already shown.
var errReported = errors.New("already reported")

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Storage backend: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the expense data")
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Currency symbol shown before amounts")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error")
}

// loadConfig reads the config file and applies command-line overrides on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagDataDir != "" {
		cfg.Storage.DataDir = flagDataDir
	}
	if flagCurrency != "" {
		cfg.Display.Currency = flagCurrency
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}
