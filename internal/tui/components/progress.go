package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvickers/sugarcap/internal/tui/theme"
)

// ColorForBudget returns the color for a consumed/limit ratio. Over the
// limit is always red; approaching it shades through yellow and orange.
func ColorForBudget(pct float64) string {
	t := theme.Active
	switch {
	case pct > 1:
		return string(t.Red)
	case pct >= 0.8:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetGauge renders the consumed-vs-limit bar with a percentage readout.
func BudgetGauge(consumedG, limitG, width int) string {
	t := theme.Active

	pct := 0.0
	if limitG > 0 {
		pct = float64(consumedG) / float64(limitG)
	}

	barW := width - 6
	if barW < 10 {
		barW = 10
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForBudget(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	shown := pct
	if shown > 1 {
		shown = 1
	}

	pctStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorForBudget(pct))).
		Bold(true)

	return bar.ViewAs(shown) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
