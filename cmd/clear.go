package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/spent/internal/cli"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every expense",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	p := cli.NewPrinter(os.Stdout, os.Stderr)
	s, err := openSession(cmd.Context(), p)
	if err != nil {
		return err
	}
	defer s.Close()

	n := s.store.Len()
	if n == 0 {
		fmt.Println("  Nothing to clear")
		return nil
	}

	if !flagYes {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete all %d expenses?", n)).
			Description("This cannot be undone.").
			Affirmative("Delete").
			Negative("Keep").
			Value(&confirmed).
			Run()
		if errors.Is(err, huh.ErrUserAborted) || (err == nil && !confirmed) {
			fmt.Println("  Kept all expenses")
			return nil
		}
		if err != nil {
			return fmt.Errorf("confirmation prompt: %w", err)
		}
	}

	if err := s.ctrl.Clear(cmd.Context()); err != nil {
		return errReported
	}
	fmt.Printf("  Deleted %s expenses\n", cli.FormatNumber(int64(n)))
	return nil
}
