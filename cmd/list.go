package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/spent/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List expenses with the running total",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	p := cli.NewPrinter(os.Stdout, os.Stderr)
	s, err := openSession(cmd.Context(), p)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Println(cli.RenderTitle("spent · Expenses"))
	p.PrintList()
	return nil
}
