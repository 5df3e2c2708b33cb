package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/budget"
	"github.com/mvickers/sugarcap/internal/config"
	"github.com/mvickers/sugarcap/internal/model"
	"github.com/mvickers/sugarcap/internal/pipeline"
	"github.com/mvickers/sugarcap/internal/store"
)

var flagDBPath string

var rootCmd = &cobra.Command{
	Use:   "sugarcap",
	Short: "Personal added-sugar budget tracker",
	Long:  "Track daily added-sugar intake against a personalized limit derived from your profile.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Ledger database path (default: XDG data dir)")
}

// errNoProfile signals that the budget model cannot run yet.
var errNoProfile = errors.New("no profile configured, run `sugarcap setup` first")

// loadEnv is the shared loading path used by all commands: config plus
// the validated effective coefficient table.
func loadEnv() (config.Config, budget.Coefficients, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, budget.Coefficients{}, err
	}
	table, err := cfg.EffectiveCoefficients()
	if err != nil {
		return cfg, table, err
	}
	return cfg, table, nil
}

func openStore() (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		path = config.DBPath()
	}
	return store.Open(path)
}

// computeToday assembles the current day's status: base limit from the
// profile, today's recorded bonus, consumption, and remainder.
func computeToday(s *store.Store, cfg config.Config, table budget.Coefficients, now time.Time) (model.TodayStatus, model.BudgetResult, error) {
	profile := cfg.UserProfile()
	if !profile.Complete() {
		return model.TodayStatus{}, model.BudgetResult{}, errNoProfile
	}

	result := budget.ComputeBaseLimit(profile, table)

	day := pipeline.DayKey(now)
	grant, err := s.GrantForDay(day)
	if err != nil {
		return model.TodayStatus{}, result, err
	}

	entries, err := s.ListEntries()
	if err != nil {
		return model.TodayStatus{}, result, err
	}
	consumed := pipeline.TodayTotal(entries, now)

	limit := budget.ApplyDailyCap(result.TotalG, grant.GrantedG)

	return model.TodayStatus{
		Day:        day,
		BaseLimitG: result.TotalG,
		BonusG:     limit - result.TotalG,
		LimitG:     limit,
		ConsumedG:  consumed,
		RemainingG: limit - consumed,
	}, result, nil
}
