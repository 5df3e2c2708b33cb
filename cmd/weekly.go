package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/cli"
	"github.com/mvickers/sugarcap/internal/pipeline"
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Trailing 7-day consumption table",
	RunE:  runWeekly,
}

func init() {
	rootCmd.AddCommand(weeklyCmd)
}

func runWeekly(_ *cobra.Command, _ []string) error {
	cfg, table, err := loadEnv()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	now := time.Now()
	status, _, err := computeToday(s, cfg, table, now)
	if err != nil {
		if errors.Is(err, errNoProfile) {
			fmt.Println()
			fmt.Println("  No profile configured.")
			fmt.Println("  Run `sugarcap setup` to set up your profile.")
			fmt.Println()
			return nil
		}
		return err
	}

	entries, err := s.ListEntries()
	if err != nil {
		return err
	}
	series := pipeline.Last7DaySeries(entries, status.LimitG, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("LAST 7 DAYS"))
	fmt.Println()

	values := make([]float64, 0, len(series))
	overDays := 0
	weekTotal := 0
	rows := make([][]string, 0, len(series))
	for _, d := range series {
		values = append(values, float64(d.TotalG))
		weekTotal += d.TotalG

		total := cli.FormatGrams(d.TotalG)
		verdict := cli.WithinLimit("ok")
		if d.OverLimit {
			total = cli.OverLimit(total)
			verdict = cli.OverLimit("over")
			overDays++
		}
		rows = append(rows, []string{
			d.Day,
			cli.FormatDayLabel(d.Day),
			total,
			cli.FormatGrams(d.LimitG),
			verdict,
		})
	}

	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Total", "Limit", ""},
		Rows:    rows,
	}))

	fmt.Printf("\n  Week total %s, %d day(s) over limit.\n\n", cli.FormatGrams(weekTotal), overDays)

	return nil
}
