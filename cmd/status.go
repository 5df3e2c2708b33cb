package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's sugar budget and consumption",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, table, err := loadEnv()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	status, _, err := computeToday(s, cfg, table, time.Now())
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

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TODAY  %s", status.Day)))
	fmt.Println()

	fmt.Printf("  %s\n\n", cli.RenderBudgetBar(status.ConsumedG, status.LimitG, 30))

	var remaining string
	if status.RemainingG < 0 {
		remaining = cli.OverLimit(cli.FormatGrams(-status.RemainingG) + " over")
	} else {
		remaining = cli.WithinLimit(cli.FormatGrams(status.RemainingG) + " left")
	}

	rows := [][]string{
		{"Base limit", cli.FormatGrams(status.BaseLimitG)},
		{"Activity bonus", cli.FormatSignedGrams(status.BonusG)},
		{"Effective limit", cli.FormatGrams(status.LimitG)},
		{"Consumed", cli.FormatGrams(status.ConsumedG)},
		{"Remaining", remaining},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Budget", "Grams"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
