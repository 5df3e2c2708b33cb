package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/budget"
	"github.com/mvickers/sugarcap/internal/cli"
	"github.com/mvickers/sugarcap/internal/model"
	"github.com/mvickers/sugarcap/internal/pipeline"
)

var activityCmd = &cobra.Command{
	Use:   "activity <kcal>",
	Short: "Record today's active energy and earn bonus grams",
	Long: `Record today's active energy burn in kcal. Qualifying activity earns
bonus sugar grams, capped per day and over the trailing week. Re-running
replaces today's grant rather than stacking.`,
	Args: cobra.ExactArgs(1),
	RunE: runActivity,
}

func init() {
	rootCmd.AddCommand(activityCmd)
}

func runActivity(_ *cobra.Command, args []string) error {
	kcal, err := strconv.ParseFloat(args[0], 64)
	if err != nil || kcal < 0 {
		return fmt.Errorf("kcal must be a non-negative number, got %q", args[0])
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	now := time.Now()
	prior, err := s.PriorSixGrants(now)
	if err != nil {
		return err
	}

	bonus := budget.ComputeActivityBonus(kcal, prior)

	day := pipeline.DayKey(now)
	if err := s.UpsertBonusGrant(model.BonusGrant{Day: day, Kcal: kcal, GrantedG: bonus.GrantedG}); err != nil {
		return err
	}

	fmt.Println()
	if bonus.GrantedG == 0 {
		fmt.Printf("  %.0f kcal recorded, no bonus earned.\n", kcal)
	} else {
		fmt.Printf("  %.0f kcal recorded, %s bonus for %s.\n",
			kcal, cli.FormatSignedGrams(bonus.GrantedG), day)
	}
	fmt.Printf("  Weekly bonus headroom left: %s\n", cli.FormatGrams(bonus.WeeklyRemainingG))

	cfg, table, err := loadEnv()
	if err == nil {
		if status, _, serr := computeToday(s, cfg, table, now); serr == nil {
			fmt.Printf("  Today's effective limit: %s\n", cli.FormatGrams(status.LimitG))
		}
	}
	fmt.Println()

	return nil
}
