// Package ingest normalizes free-form tabular input into validated
// consumption rows. Bad rows are dropped, never fatal, since partial
// success is the normal case.
package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is one normalized consumption record ready for ledger insertion.
type Row struct {
	Timestamp time.Time
	Item      string
	SugarG    int
}

// Date layouts tried in order for the three-field form.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseRows parses line-oriented comma-separated text into rows.
//
// Accepted shapes per line:
//   - item,sugar          (timestamp defaults to now)
//   - date,item,sugar
//
// A first line mentioning date/item/sugar is treated as a header and
// skipped. Lines yielding an empty item or a non-positive sugar amount
// are silently dropped. Never fails outright.
func ParseRows(text string, now time.Time) []Row {
	lines := strings.Split(text, "\n")

	var rows []Row
	for i, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		if i == 0 && isHeaderLine(line) {
			continue
		}

		fields := strings.Split(line, ",")
		var dateField, itemField, sugarField string
		switch len(fields) {
		case 2:
			itemField, sugarField = fields[0], fields[1]
		case 3:
			dateField, itemField, sugarField = fields[0], fields[1], fields[2]
		default:
			continue
		}

		item := strings.TrimSpace(itemField)
		grams := parseSugarAmount(sugarField)
		if item == "" || grams <= 0 {
			continue
		}

		ts := now
		if dateField != "" {
			if parsed, ok := parseDate(strings.TrimSpace(dateField)); ok {
				ts = parsed
			}
		}

		rows = append(rows, Row{Timestamp: ts, Item: item, SugarG: grams})
	}
	return rows
}

// isHeaderLine reports whether the line looks like a column header.
func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range []string{"date", "item", "sugar"} {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// parseSugarAmount strips everything but digits and decimal points before
// parsing, so "39g", " 12.5 g" and "sugar: 7" all yield a number.
// Unparseable input yields 0, which the caller drops.
func parseSugarAmount(field string) int {
	var b strings.Builder
	for _, r := range field {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

func parseDate(field string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, field, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
