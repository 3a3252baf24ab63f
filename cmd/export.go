package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagExportOut    string
	flagExportIndent bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored expense list as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Write to this file instead of stdout")
	exportCmd.Flags().BoolVar(&flagExportIndent, "indent", false, "Pretty-print the JSON")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	p := cli.NewPrinter(io.Discard, os.Stderr)
	s, err := openSession(cmd.Context(), p)
	if err != nil {
		return err
	}
	defer s.Close()

	payload, err := store.EncodeExpenses(s.store.List())
	if err != nil {
		return fmt.Errorf("encoding expenses: %w", err)
	}
	if flagExportIndent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, payload, "", "  "); err != nil {
			return fmt.Errorf("formatting expenses: %w", err)
		}
		payload = buf.Bytes()
	}
	payload = append(payload, '\n')

	if flagExportOut == "" {
		_, err = os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(flagExportOut, payload, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", flagExportOut, err)
	}
	fmt.Fprintf(os.Stderr, "  Exported %d expenses to %s\n", s.store.Len(), flagExportOut)
	return nil
}
