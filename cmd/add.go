package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/cli"
	"github.com/mvickers/sugarcap/internal/ingest"
	"github.com/mvickers/sugarcap/internal/model"
)

var (
	flagAddPreset string
	flagAddAt     string
)

var addCmd = &cobra.Command{
	Use:   "add [item] [grams]",
	Short: "Log a consumption entry",
	Long: `Log a consumption entry, either explicitly or from a preset:

  sugarcap add "Soda" 39
  sugarcap add --preset cola

Run with --preset and no name to list available presets.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddPreset, "preset", "", "Log a preset item by name")
	addCmd.Flags().Lookup("preset").NoOptDefVal = "list"
	addCmd.Flags().StringVar(&flagAddAt, "at", "", "Timestamp override (2006-01-02 or 2006-01-02 15:04)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	var item string
	var sugarG int

	switch {
	case flagAddPreset == "list":
		return listPresets()
	case flagAddPreset != "":
		p, ok := ingest.LookupPreset(flagAddPreset)
		if !ok {
			return fmt.Errorf("unknown preset %q (run `sugarcap add --preset` to list)", flagAddPreset)
		}
		item = p.Label
		sugarG = p.SugarG
	case len(args) == 2:
		g, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("grams must be an integer, got %q", args[1])
		}
		item = args[0]
		sugarG = g
	default:
		return fmt.Errorf("usage: sugarcap add <item> <grams>, or sugarcap add --preset <name>")
	}

	loggedAt := time.Now()
	if flagAddAt != "" {
		ts, err := parseAtFlag(flagAddAt)
		if err != nil {
			return err
		}
		loggedAt = ts
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	source := model.SourceManual
	if flagAddPreset != "" {
		source = model.SourcePreset
	}

	e, err := s.AddEntry(loggedAt, item, sugarG, source)
	if err != nil {
		return err
	}

	fmt.Printf("  Logged %s of %q (%s)\n", cli.FormatGrams(e.SugarG), e.Item, cli.ShortID(e.ID))

	// Show the remainder when the profile allows it.
	cfg, table, err := loadEnv()
	if err == nil {
		if status, _, serr := computeToday(s, cfg, table, time.Now()); serr == nil {
			if status.RemainingG < 0 {
				fmt.Printf("  Over today's limit by %s.\n", cli.FormatGrams(-status.RemainingG))
			} else {
				fmt.Printf("  %s left of today's %s limit.\n",
					cli.FormatGrams(status.RemainingG), cli.FormatGrams(status.LimitG))
			}
		}
	}

	return nil
}

func listPresets() error {
	rows := [][]string{}
	for _, p := range ingest.Presets() {
		rows = append(rows, []string{p.Name, p.Label, cli.FormatGrams(p.SugarG)})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Presets",
		Headers: []string{"Name", "Item", "Sugar"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func parseAtFlag(v string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if ts, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse --at value %q", v)
}
