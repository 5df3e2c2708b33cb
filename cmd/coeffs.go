package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/budget"
	"github.com/mvickers/sugarcap/internal/cli"
	"github.com/mvickers/sugarcap/internal/config"
)

var coeffsCmd = &cobra.Command{
	Use:   "coeffs",
	Short: "Inspect and tune the budget coefficient table",
	RunE:  runCoeffsList,
}

var coeffsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all coefficients and their effective values",
	RunE:  runCoeffsList,
}

var coeffsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one coefficient",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoeffsGet,
}

var coeffsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Override a coefficient (requires admin mode)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCoeffsSet,
}

var coeffsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Drop one override, or all of them (requires admin mode)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCoeffsReset,
}

func init() {
	coeffsCmd.AddCommand(coeffsListCmd, coeffsGetCmd, coeffsSetCmd, coeffsResetCmd)
	rootCmd.AddCommand(coeffsCmd)
}

var errNotAdmin = errors.New("coefficient changes require admin mode (set admin_mode = true under [general] in the config)")

func runCoeffsList(_ *cobra.Command, _ []string) error {
	cfg, table, err := loadEnv()
	if err != nil {
		return err
	}

	defaults := budget.Defaults()
	rows := make([][]string, 0, len(budget.Keys()))
	for _, key := range budget.Keys() {
		v, _ := table.Get(key)
		d, _ := defaults.Get(key)
		note := ""
		if _, overridden := cfg.Coefficients[key]; overridden {
			note = "override"
		}
		rows = append(rows, []string{key, trimFloat(v), trimFloat(d), note})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Coefficients",
		Headers: []string{"Key", "Effective", "Default", ""},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runCoeffsGet(_ *cobra.Command, args []string) error {
	_, table, err := loadEnv()
	if err != nil {
		return err
	}
	v, err := table.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", args[0], trimFloat(v))
	return nil
}

func runCoeffsSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.General.AdminMode {
		return errNotAdmin
	}

	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("value must be a number, got %q", args[1])
	}

	// Dry-run against the full table so a bad override is rejected before
	// it is persisted.
	if cfg.Coefficients == nil {
		cfg.Coefficients = make(map[string]float64)
	}
	cfg.Coefficients[args[0]] = value
	if _, err := cfg.EffectiveCoefficients(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  %s = %s (saved)\n", args[0], trimFloat(value))
	return nil
}

func runCoeffsReset(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.General.AdminMode {
		return errNotAdmin
	}

	if len(args) == 0 {
		cfg.Coefficients = nil
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println("  All overrides dropped.")
		return nil
	}

	if _, ok := cfg.Coefficients[args[0]]; !ok {
		return fmt.Errorf("no override for %q", args[0])
	}
	delete(cfg.Coefficients, args[0])
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Override for %s dropped.\n", args[0])
	return nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
