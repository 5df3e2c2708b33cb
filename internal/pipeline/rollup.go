// Package pipeline aggregates ledger entries into per-day totals and the
// trailing 7-day series the status views render.
package pipeline

import (
	"sort"
	"time"

	"github.com/mvickers/sugarcap/internal/model"
)

// DayKey formats a timestamp as the local calendar-day key.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// RollupByDay sums entries into a day-keyed total map. Entries are never
// merged by content, only bucketed by calendar day, so the result is
// independent of entry order.
func RollupByDay(entries []model.Entry) map[string]int {
	totals := make(map[string]int)
	for _, e := range entries {
		totals[DayKey(e.LoggedAt)] += e.SugarG
	}
	return totals
}

// Last7DaySeries builds the fixed 7-element series spanning the 6 days
// before now through now inclusive, oldest first. The same current limit
// is applied to every day; past limits are not reconstructed.
func Last7DaySeries(entries []model.Entry, limitG int, now time.Time) []model.DaySummary {
	totals := RollupByDay(entries)

	series := make([]model.DaySummary, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		day := DayKey(now.AddDate(0, 0, offset))
		total := totals[day]
		series = append(series, model.DaySummary{
			Day:       day,
			TotalG:    total,
			LimitG:    limitG,
			OverLimit: total > limitG,
		})
	}
	return series
}

// TodayTotal sums entries whose timestamp falls within the current local
// day. Computed independently of RollupByDay; both derive the same value
// by construction.
func TodayTotal(entries []model.Entry, now time.Time) int {
	local := now.Local()
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	// Next local midnight, not start+24h: DST days are not 24 hours long.
	end := start.AddDate(0, 0, 1)

	total := 0
	for _, e := range entries {
		ts := e.LoggedAt.Local()
		if ts.Before(start) || !ts.Before(end) {
			continue
		}
		total += e.SugarG
	}
	return total
}

// SortNewestFirst orders entries most-recent-first for display. Ordering
// carries no semantic weight; aggregation ignores it.
func SortNewestFirst(entries []model.Entry) []model.Entry {
	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LoggedAt.After(sorted[j].LoggedAt)
	})
	return sorted
}
