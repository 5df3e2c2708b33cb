package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/pipeline"
)

var flagExportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the consumption ledger to stdout",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "csv", "Output format: csv or json")
	rootCmd.AddCommand(exportCmd)
}

type exportEntry struct {
	ID       string    `json:"id"`
	LoggedAt time.Time `json:"logged_at"`
	Item     string    `json:"item"`
	SugarG   int       `json:"sugar_g"`
	Source   string    `json:"source"`
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.ListEntries()
	if err != nil {
		return err
	}
	sorted := pipeline.SortNewestFirst(entries)

	switch flagExportFormat {
	case "json":
		out := make([]exportEntry, 0, len(sorted))
		for _, e := range sorted {
			out = append(out, exportEntry{
				ID:       e.ID,
				LoggedAt: e.LoggedAt,
				Item:     e.Item,
				SugarG:   e.SugarG,
				Source:   e.Source,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "csv":
		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"date", "item", "sugarG"}); err != nil {
			return err
		}
		for _, e := range sorted {
			rec := []string{
				e.LoggedAt.Local().Format("2006-01-02"),
				e.Item,
				strconv.Itoa(e.SugarG),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()

	default:
		return fmt.Errorf("unknown format %q (want csv or json)", flagExportFormat)
	}
}
