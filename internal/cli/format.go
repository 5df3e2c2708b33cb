// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatGrams formats an integer gram amount, e.g. 39 -> "39g".
func FormatGrams(g int) string {
	return strconv.Itoa(g) + "g"
}

// FormatSignedGrams formats a gram delta with an explicit sign.
func FormatSignedGrams(g int) string {
	if g >= 0 {
		return "+" + FormatGrams(g)
	}
	return "-" + FormatGrams(-g)
}

// FormatFactor formats a budget breakdown multiplier, e.g. 0.85 -> "×0.85".
func FormatFactor(f float64) string {
	return fmt.Sprintf("×%.2f", f)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatDayLabel turns a 2006-01-02 day key into a short weekday label,
// falling back to the raw key when it doesn't parse.
func FormatDayLabel(dayKey string) string {
	t, err := time.ParseInLocation("2006-01-02", dayKey, time.Local)
	if err != nil {
		return dayKey
	}
	return FormatDayOfWeek(int(t.Weekday()))
}

// FormatEntryTime formats a ledger timestamp for listing.
func FormatEntryTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// Truncate shortens s to at most max runes, ending with an ellipsis
// when anything was cut. Counts runes, not bytes, so multi-byte labels
// are never split mid-character.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 1 {
		return ""
	}
	return string(r[:max-1]) + "…"
}

// ShortID returns the first 8 characters of an entry identifier for
// compact display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
