package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvickers/sugarcap/internal/cli"
	"github.com/mvickers/sugarcap/internal/tui/theme"
)

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active

	if len(a.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n" + emptyStyle.Render("  No entries logged yet. Use `sugarcap add` to log one.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)

	// Visible window: keep the cursor on screen. Header + hint take 3 lines.
	visible := contentH - 3
	if visible < 3 {
		visible = 3
	}
	offset := 0
	if a.histCursor >= visible {
		offset = a.histCursor - visible + 1
	}
	end := offset + visible
	if end > len(a.entries) {
		end = len(a.entries)
	}

	itemW := cw - 36
	if itemW < 10 {
		itemW = 10
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-10s %-16s %-*s %6s", "ID", "Logged", itemW, "Item", "Sugar")))
	b.WriteString("\n")

	for i := offset; i < end; i++ {
		e := a.entries[i]
		item := cli.Truncate(e.Item, itemW)
		line := fmt.Sprintf("  %-10s %-16s %-*s %6s",
			cli.ShortID(e.ID),
			cli.FormatEntryTime(e.LoggedAt),
			itemW, item,
			cli.FormatGrams(e.SugarG),
		)
		if i == a.histCursor {
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d entries · j/k move · d delete", len(a.entries))))

	return b.String()
}
