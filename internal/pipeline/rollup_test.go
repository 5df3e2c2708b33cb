package pipeline

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/mvickers/sugarcap/internal/model"
)

func entryAt(t time.Time, grams int) model.Entry {
	return model.Entry{ID: "e", LoggedAt: t, Item: "test", SugarG: grams, Source: model.SourceManual}
}

func TestRollupByDay_SumsWithinDay(t *testing.T) {
	day := time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local)
	entries := []model.Entry{
		entryAt(day, 10),
		entryAt(day.Add(4*time.Hour), 15),
		entryAt(day.AddDate(0, 0, 1), 7),
	}

	totals := RollupByDay(entries)
	if got := totals["2024-03-10"]; got != 25 {
		t.Errorf("totals[2024-03-10] = %d, want 25", got)
	}
	if got := totals["2024-03-11"]; got != 7 {
		t.Errorf("totals[2024-03-11] = %d, want 7", got)
	}
}

func TestRollupByDay_OrderIndependent(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	entries := []model.Entry{
		entryAt(base, 5),
		entryAt(base.Add(time.Hour), 8),
		entryAt(base.AddDate(0, 0, -1), 12),
		entryAt(base.AddDate(0, 0, -2), 3),
		entryAt(base.Add(2*time.Hour), 1),
	}

	want := RollupByDay(entries)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.Entry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := RollupByDay(shuffled); !reflect.DeepEqual(got, want) {
			t.Fatalf("shuffle %d: totals differ: got %v, want %v", i, got, want)
		}
	}
}

func TestLast7DaySeries_ShapeAndOrder(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)
	series := Last7DaySeries(nil, 30, now)

	if len(series) != 7 {
		t.Fatalf("len(series) = %d, want 7", len(series))
	}
	if series[6].Day != "2024-03-10" {
		t.Errorf("last day = %s, want 2024-03-10", series[6].Day)
	}
	if series[0].Day != "2024-03-04" {
		t.Errorf("first day = %s, want 2024-03-04", series[0].Day)
	}
	for i := 1; i < 7; i++ {
		if series[i].Day <= series[i-1].Day {
			t.Errorf("series not ascending at %d: %s <= %s", i, series[i].Day, series[i-1].Day)
		}
	}
}

func TestLast7DaySeries_OverLimitIsStrict(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.Local)
	entries := []model.Entry{
		entryAt(now, 30),                   // exactly at limit
		entryAt(now.AddDate(0, 0, -1), 31), // over
		entryAt(now.AddDate(0, 0, -2), 29), // under
	}

	series := Last7DaySeries(entries, 30, now)
	if series[6].OverLimit {
		t.Error("total equal to limit flagged as over")
	}
	if !series[5].OverLimit {
		t.Error("total above limit not flagged")
	}
	if series[4].OverLimit {
		t.Error("total below limit flagged as over")
	}
}

func TestLast7DaySeries_AppliesCurrentLimitToAllDays(t *testing.T) {
	now := time.Now()
	series := Last7DaySeries(nil, 42, now)
	for _, d := range series {
		if d.LimitG != 42 {
			t.Errorf("day %s: LimitG = %d, want 42", d.Day, d.LimitG)
		}
	}
}

func TestTodayTotal_MatchesRollup(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 0, 0, 0, time.Local)
	entries := []model.Entry{
		entryAt(time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), 5),    // midnight, included
		entryAt(time.Date(2024, 3, 10, 23, 59, 59, 0, time.Local), 9), // end of day, included
		entryAt(time.Date(2024, 3, 9, 23, 59, 59, 0, time.Local), 50), // yesterday
		entryAt(time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local), 50),   // tomorrow
	}

	got := TodayTotal(entries, now)
	if got != 14 {
		t.Errorf("TodayTotal = %d, want 14", got)
	}
	if rollup := RollupByDay(entries)[DayKey(now)]; rollup != got {
		t.Errorf("TodayTotal (%d) disagrees with rollup (%d)", got, rollup)
	}
}

func TestTodayTotal_MatchesRollupAcrossDSTFallBack(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	orig := time.Local
	time.Local = loc
	defer func() { time.Local = orig }()

	// 2024-11-03 is the fall-back day in New York, 25 local hours.
	// Entries in the final hour still belong to the same calendar day.
	now := time.Date(2024, 11, 3, 12, 0, 0, 0, loc)
	entries := []model.Entry{
		entryAt(time.Date(2024, 11, 3, 23, 30, 0, 0, loc), 10),
		entryAt(time.Date(2024, 11, 3, 0, 30, 0, 0, loc), 4),
		entryAt(time.Date(2024, 11, 4, 0, 30, 0, 0, loc), 50), // next day
	}

	got := TodayTotal(entries, now)
	if got != 14 {
		t.Errorf("TodayTotal = %d, want 14", got)
	}
	if rollup := RollupByDay(entries)[DayKey(now)]; rollup != got {
		t.Errorf("TodayTotal (%d) disagrees with rollup (%d)", got, rollup)
	}
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	entries := []model.Entry{
		entryAt(base.Add(-2*time.Hour), 1),
		entryAt(base, 2),
		entryAt(base.Add(-1*time.Hour), 3),
	}

	sorted := SortNewestFirst(entries)
	if sorted[0].SugarG != 2 || sorted[1].SugarG != 3 || sorted[2].SugarG != 1 {
		t.Errorf("unexpected order: %v", sorted)
	}
	// Input untouched
	if entries[0].SugarG != 1 {
		t.Error("input slice was mutated")
	}
}
