package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mvickers/sugarcap/internal/config"
	"github.com/mvickers/sugarcap/internal/forms"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive profile setup",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults so re-running edits in place.
	cfg, _ := config.Load()

	v := forms.ProfileFromConfig(cfg)
	theme := cfg.General.Theme
	if theme == "" {
		theme = "flexoki-dark"
	}

	groups := forms.ProfileGroups(&v,
		huh.NewSelect[string]().
			Title("Color theme").
			Options(
				huh.NewOption("Flexoki Dark", "flexoki-dark"),
				huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
				huh.NewOption("Terminal (ANSI 16)", "terminal"),
			).
			Value(&theme),
	)

	if err := huh.NewForm(groups...).Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	v.Apply(&cfg)
	cfg.General.Theme = theme

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `sugarcap` to see today's budget.")
	fmt.Println()

	return nil
}
