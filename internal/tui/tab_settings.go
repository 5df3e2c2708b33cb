package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvickers/sugarcap/internal/config"
	"github.com/mvickers/sugarcap/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg, _ := config.Load()

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-12s", label)),
			valueStyle.Render(value))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Profile"))
	b.WriteString("\n")
	b.WriteString(row("Sex", cfg.Profile.Sex))
	b.WriteString(row("Age", fmt.Sprintf("%d", cfg.Profile.Age)))
	b.WriteString(row("Height", fmt.Sprintf("%.1f cm", cfg.Profile.HeightCm)))
	b.WriteString(row("Weight", fmt.Sprintf("%.1f kg", cfg.Profile.WeightKg)))
	b.WriteString(row("Activity", cfg.Profile.ActivityLevel))
	if cfg.Profile.Ethnicity != "" {
		adjust := "off"
		if cfg.Profile.EthnicityAdjust {
			adjust = "on"
		}
		b.WriteString(row("Ethnicity", fmt.Sprintf("%s (adjust %s)", cfg.Profile.Ethnicity, adjust)))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Appearance"))
	b.WriteString("\n")
	b.WriteString(row("Theme", theme.Active.Name))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Storage"))
	b.WriteString("\n")
	b.WriteString(row("Config", config.Path()))
	b.WriteString(row("Ledger", a.dbPath))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  [e]dit profile · [t]heme cycle"))
	b.WriteString("\n")

	return b.String()
}
