package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/theirongolddev/spent/internal/cli"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an expense by id",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[0], err)
	}

	p := cli.NewPrinter(os.Stdout, os.Stderr)
	s, err := openSession(cmd.Context(), p)
	if err != nil {
		return err
	}
	defer s.Close()

	removed, err := s.ctrl.Delete(cmd.Context(), id)
	if err != nil {
		return errReported
	}
	if !removed {
		fmt.Printf("  No expense with id %d\n", id)
		return nil
	}
	fmt.Printf("  Deleted expense %d\n", id)
	fmt.Printf("  Total: %s\n", p.Model().List.Total)
	return nil
}
