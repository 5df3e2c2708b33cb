package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvickers/sugarcap/internal/cli"
	"github.com/mvickers/sugarcap/internal/model"
	"github.com/mvickers/sugarcap/internal/tui/components"
	"github.com/mvickers/sugarcap/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	st := a.status
	var b strings.Builder

	// Row 1: Metric cards
	remainingSub := "within budget"
	if st.RemainingG < 0 {
		remainingSub = "over budget"
	}
	bonusSub := "no activity bonus"
	if st.BonusG > 0 {
		bonusSub = "from activity"
	}

	cards := []struct{ Label, Value, Sub string }{
		{"Limit", cli.FormatGrams(st.LimitG), "base " + cli.FormatGrams(st.BaseLimitG)},
		{"Bonus", cli.FormatSignedGrams(st.BonusG), bonusSub},
		{"Consumed", cli.FormatGrams(st.ConsumedG), "today"},
		{"Remaining", cli.FormatGrams(st.RemainingG), remainingSub},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Budget gauge
	gaugeW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Today  %s / %s", cli.FormatGrams(st.ConsumedG), cli.FormatGrams(st.LimitG)),
		components.BudgetGauge(st.ConsumedG, st.LimitG, gaugeW),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Week chart + limit breakdown
	halves := components.LayoutRow(cw, 2)

	var weekBody string
	if len(a.series) > 0 {
		totals := make([]float64, len(a.series))
		labels := make([]string, len(a.series))
		for i, d := range a.series {
			totals[i] = float64(d.TotalG)
			labels[i] = cli.FormatDayLabel(d.Day)
		}
		weekBody = components.WeekBars(totals, float64(st.LimitG), labels, 6)
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var bd strings.Builder
	if math.IsNaN(a.result.BMI) {
		fmt.Fprintf(&bd, "%s %s\n", labelStyle.Render("BMI      "), valueStyle.Render("n/a"))
	} else {
		fmt.Fprintf(&bd, "%s %s\n", labelStyle.Render("BMI      "), valueStyle.Render(fmt.Sprintf("%.1f", a.result.BMI)))
	}
	factors := []struct {
		label string
		key   string
	}{
		{"Base     ", model.FactorBase},
		{"BMI band ", model.FactorBMI},
		{"Pancreas ", model.FactorPancreas},
		{"Age      ", model.FactorAge},
		{"Activity ", model.FactorActivity},
		{"Ethnicity", model.FactorEthnicity},
	}
	for _, f := range factors {
		v, ok := a.result.Breakdown[f.key]
		if !ok {
			continue
		}
		if f.key == model.FactorBase {
			fmt.Fprintf(&bd, "%s %s\n", labelStyle.Render(f.label), valueStyle.Render(fmt.Sprintf("%.0fg", v)))
		} else {
			fmt.Fprintf(&bd, "%s %s\n", labelStyle.Render(f.label), valueStyle.Render(cli.FormatFactor(v)))
		}
	}

	weekCard := components.ContentCard("Last 7 Days", weekBody, halves[0])
	bdCard := components.ContentCard("Limit Breakdown", bd.String(), halves[1])
	b.WriteString(components.CardRow([]string{weekCard, bdCard}))

	return b.String()
}
