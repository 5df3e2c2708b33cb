package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/cli"
	"github.com/mvickers/sugarcap/internal/pipeline"
)

var flagEntriesLimit int

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List logged consumption entries",
	RunE:  runEntries,
}

func init() {
	entriesCmd.Flags().IntVarP(&flagEntriesLimit, "limit", "n", 20, "Max entries to show (0 for all)")
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.ListEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("\n  No entries logged yet.")
		return nil
	}

	sorted := pipeline.SortNewestFirst(entries)
	if flagEntriesLimit > 0 && len(sorted) > flagEntriesLimit {
		sorted = sorted[:flagEntriesLimit]
	}

	rows := make([][]string, 0, len(sorted))
	for _, e := range sorted {
		rows = append(rows, []string{
			cli.ShortID(e.ID),
			cli.FormatEntryTime(e.LoggedAt),
			e.Item,
			cli.FormatGrams(e.SugarG),
			e.Source,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Entries (%d of %d)", len(sorted), len(entries)),
		Headers: []string{"ID", "Logged", "Item", "Sugar", "Source"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
