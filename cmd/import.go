package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/ingest"
	"github.com/mvickers/sugarcap/internal/model"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import consumption entries from a CSV-like file",
	Long: `Import entries from a text file. Each line is either

  date,item,sugarG
  item,sugarG

Lines without a usable item and positive sugar amount are dropped; lines
without a parseable date get the current time. An optional header line
is skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	rows := ingest.ParseRows(string(data), time.Now())
	if len(rows) == 0 {
		fmt.Println("  No usable rows found.")
		return nil
	}

	entries := make([]model.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, model.Entry{
			LoggedAt: r.Timestamp,
			Item:     r.Item,
			SugarG:   r.SugarG,
			Source:   model.SourceImport,
		})
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	inserted, err := s.AddEntries(entries)
	if err != nil {
		return err
	}

	fmt.Printf("  Imported %d entries from %s.\n", inserted, args[0])
	return nil
}
