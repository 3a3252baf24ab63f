// Package cmd implements the spent CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:   %s\n", cfg.Storage.Backend)
	fmt.Printf("    Data dir:  %s\n", cfg.ResolvedDataDir())
	fmt.Printf("    Slot:      %s\n", cfg.Storage.Slot)
	printStorageStats(cmd, cfg)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Printf("    File:  %s\n", cfg.ResolvedLogFile())
	fmt.Println()

	fmt.Println("  Run `spent setup` to reconfigure.")
	return nil
}

// printStorageStats reports the size of the backing file and, for SQLite,
// when the slot was last written. Missing storage is not an error here and
// is never created.
func printStorageStats(cmd *cobra.Command, cfg config.Config) {
	if cfg.Storage.Backend == store.BackendMemory {
		fmt.Println("    Size:      (in memory, nothing stored)")
		return
	}

	expected, err := store.SlotPath(cfg.Storage.Backend, cfg.ResolvedDataDir(), cfg.Storage.Slot)
	if err != nil {
		fmt.Printf("    Storage:   unavailable (%v)\n", err)
		return
	}
	if _, err := os.Stat(expected); err != nil {
		fmt.Printf("    Location:  %s\n", expected)
		fmt.Println("    Size:      (not created yet)")
		return
	}

	slot, err := store.Open(cfg.Storage.Backend, cfg.ResolvedDataDir(), cfg.Storage.Slot)
	if err != nil {
		fmt.Printf("    Storage:   unavailable (%v)\n", err)
		return
	}
	defer slot.Close()

	var path string
	var updated time.Time
	switch sl := slot.(type) {
	case *store.SQLiteSlot:
		path = sl.Path()
		updated, _ = sl.UpdatedAt(cmd.Context())
	case *store.FileSlot:
		path = sl.Path()
		if info, err := os.Stat(path); err == nil {
			updated = info.ModTime()
		}
	}

	fmt.Printf("    Location:  %s\n", slot.Location())
	if info, err := os.Stat(path); err == nil {
		fmt.Printf("    Size:      %s\n", cli.FormatBytes(info.Size()))
	} else {
		fmt.Println("    Size:      (not created yet)")
	}
	fmt.Printf("    Updated:   %s\n", cli.FormatAge(updated))
}
