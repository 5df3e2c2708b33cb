package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvickers/sugarcap/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// WeekBars renders a vertical bar chart of daily totals against the
// limit. Bars over the limit are red; the limit itself draws as a tick
// on the y-axis. Labels go under the bars, one per value.
func WeekBars(totals []float64, limit float64, labels []string, height int) string {
	if len(totals) == 0 {
		return ""
	}
	if height < 3 {
		height = 3
	}

	t := theme.Active

	ceiling := limit
	for _, v := range totals {
		if v > ceiling {
			ceiling = v
		}
	}
	if ceiling == 0 {
		ceiling = 1
	}

	limitRow := 0
	if limit > 0 {
		limitRow = int(limit / ceiling * float64(height))
		if limitRow > height {
			limitRow = height
		}
	}

	const barW = 4
	const gap = 2

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	okStyle := lipgloss.NewStyle().Foreground(t.Green)
	overStyle := lipgloss.NewStyle().Foreground(t.Red)
	limitStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		// Y-axis with a tick where the limit sits.
		switch {
		case row == limitRow && limit > 0:
			b.WriteString(limitStyle.Render(fmt.Sprintf("%4.0f┤", limit)))
		case row == height:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%4.0f│", ceiling)))
		default:
			b.WriteString(axisStyle.Render("    │"))
		}

		for i, v := range totals {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}

			style := okStyle
			if limit > 0 && v > limit {
				style = overStyle
			}

			switch {
			case v >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	// X-axis
	axisLen := len(totals)*barW + (len(totals)-1)*gap
	b.WriteString(axisStyle.Render("   0└" + strings.Repeat("─", axisLen)))

	// Labels
	if len(labels) == len(totals) {
		b.WriteString("\n     ")
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		for i, lbl := range labels {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			if len(lbl) > barW {
				lbl = lbl[:barW]
			}
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", barW, lbl)))
		}
	}

	return b.String()
}
