package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/spent/internal/cli"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <category> <amount>",
	Short: "Record an expense",
	Example: `  spent add groceries 12.50
  spent add "train ticket" 7,80`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	p := cli.NewPrinter(os.Stdout, os.Stderr)
	s, err := openSession(cmd.Context(), p)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ctrl.Submit(cmd.Context(), args[0], args[1]); err != nil {
		// Rejected or not saved; the printer already showed the notice.
		return errReported
	}

	rows := p.Model().List.Rows
	added := rows[len(rows)-1]
	fmt.Printf("  Added %s %s (id %d)\n", added.Category, added.Amount, added.ID)
	fmt.Printf("  Total: %s\n", p.Model().List.Total)
	return nil
}
