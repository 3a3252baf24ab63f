package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/spent/internal/cli"

	"github.com/spf13/cobra"
)

var flagBarWidth int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show spending per category",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVarP(&flagBarWidth, "width", "w", 30, "Width of the category bars")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	p := cli.NewPrinter(os.Stdout, os.Stderr)
	s, err := openSession(cmd.Context(), p)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Println(cli.RenderTitle("spent · Spending by Category"))
	p.PrintChart(flagBarWidth)
	return nil
}
