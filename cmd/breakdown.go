package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/budget"
	"github.com/mvickers/sugarcap/internal/cli"
	"github.com/mvickers/sugarcap/internal/model"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show how your daily limit is derived",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	cfg, table, err := loadEnv()
	if err != nil {
		return err
	}

	profile := cfg.UserProfile()
	if !profile.Complete() {
		fmt.Println()
		fmt.Println("  No profile configured.")
		fmt.Println("  Run `sugarcap setup` to set up your profile.")
		fmt.Println()
		return nil
	}

	result := budget.ComputeBaseLimit(profile, table)

	fmt.Println()
	fmt.Println(cli.RenderTitle("LIMIT BREAKDOWN"))
	fmt.Println()

	if math.IsNaN(result.BMI) {
		fmt.Println("  BMI: undefined (check height and weight)")
	} else {
		fmt.Printf("  BMI: %.1f\n", result.BMI)
	}
	fmt.Println()

	rows := [][]string{
		{"Base allowance", fmt.Sprintf("%.0fg", result.Breakdown[model.FactorBase])},
		{"BMI band", cli.FormatFactor(result.Breakdown[model.FactorBMI])},
		{"Pancreas capacity", cli.FormatFactor(result.Breakdown[model.FactorPancreas])},
		{"Age band", cli.FormatFactor(result.Breakdown[model.FactorAge])},
		{"Activity level", cli.FormatFactor(result.Breakdown[model.FactorActivity])},
	}
	if profile.EthnicityAdjust {
		rows = append(rows, []string{"Ethnicity", cli.FormatFactor(result.Breakdown[model.FactorEthnicity])})
	}
	rows = append(rows, []string{"Daily limit", cli.FormatGrams(result.TotalG)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Factor", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
