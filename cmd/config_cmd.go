// Package cmd implements the sugarcap CLI commands.
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Printf("  Ledger db:   %s\n", config.DBPath())
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Theme:      %s\n", cfg.General.Theme)
	fmt.Printf("    Admin mode: %v\n", cfg.General.AdminMode)
	fmt.Println()

	fmt.Println("  [Profile]")
	fmt.Printf("    Sex:       %s\n", cfg.Profile.Sex)
	fmt.Printf("    Age:       %d\n", cfg.Profile.Age)
	fmt.Printf("    Height:    %.1f cm\n", cfg.Profile.HeightCm)
	fmt.Printf("    Weight:    %.1f kg\n", cfg.Profile.WeightKg)
	fmt.Printf("    Activity:  %s\n", cfg.Profile.ActivityLevel)
	if cfg.Profile.Ethnicity != "" {
		fmt.Printf("    Ethnicity: %s (adjust: %v)\n", cfg.Profile.Ethnicity, cfg.Profile.EthnicityAdjust)
	}
	fmt.Println()

	if len(cfg.Coefficients) > 0 {
		fmt.Println("  [Coefficient overrides]")
		keys := make([]string, 0, len(cfg.Coefficients))
		for key := range cfg.Coefficients {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("    %s = %g\n", key, cfg.Coefficients[key])
		}
		fmt.Println()
	}

	fmt.Println("  Run `sugarcap setup` to reconfigure.")
	return nil
}
