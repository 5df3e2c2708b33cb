package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mvickers/sugarcap/internal/model"
	"github.com/mvickers/sugarcap/internal/pipeline"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddListDeleteEntry(t *testing.T) {
	s := openTestStore(t)
	now := time.Now()

	e, err := s.AddEntry(now, "Soda", 39, model.SourceManual)
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if e.ID == "" {
		t.Fatal("entry got no identifier")
	}

	entries, err := s.ListEntries()
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	got := entries[0]
	if got.Item != "Soda" || got.SugarG != 39 || got.Source != model.SourceManual {
		t.Errorf("entry = %+v", got)
	}
	if got.LoggedAt.Unix() != now.Unix() {
		t.Errorf("LoggedAt = %v, want %v", got.LoggedAt, now)
	}

	ok, err := s.DeleteEntry(e.ID)
	if err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if !ok {
		t.Error("DeleteEntry reported no row removed")
	}

	count, err := s.EntryCount()
	if err != nil {
		t.Fatalf("EntryCount: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestDeleteEntry_MissingID(t *testing.T) {
	s := openTestStore(t)
	ok, err := s.DeleteEntry("no-such-id")
	if err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if ok {
		t.Error("DeleteEntry reported a row removed for unknown id")
	}
}

func TestAddEntry_RejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.AddEntry(time.Now(), "", 10, model.SourceManual); err == nil {
		t.Error("expected error for empty item")
	}
	if _, err := s.AddEntry(time.Now(), "Water", 0, model.SourceManual); err == nil {
		t.Error("expected error for zero sugar")
	}
}

func TestAddEntries_BatchSkipsInvalid(t *testing.T) {
	s := openTestStore(t)
	now := time.Now()
	batch := []model.Entry{
		{LoggedAt: now, Item: "Soda", SugarG: 39, Source: model.SourceImport},
		{LoggedAt: now, Item: "", SugarG: 10, Source: model.SourceImport},
		{LoggedAt: now, Item: "Cake", SugarG: 22, Source: model.SourceImport},
	}

	n, err := s.AddEntries(batch)
	if err != nil {
		t.Fatalf("AddEntries: %v", err)
	}
	if n != 2 {
		t.Errorf("inserted = %d, want 2", n)
	}
}

func TestEntryIdentifiersUnique(t *testing.T) {
	s := openTestStore(t)
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		e, err := s.AddEntry(time.Now(), "x", 1, model.SourceManual)
		if err != nil {
			t.Fatalf("AddEntry: %v", err)
		}
		if _, dup := seen[e.ID]; dup {
			t.Fatalf("duplicate identifier %s", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
}

func TestBonusGrant_UpsertOverwrites(t *testing.T) {
	s := openTestStore(t)
	day := "2024-05-20"

	if err := s.UpsertBonusGrant(model.BonusGrant{Day: day, Kcal: 300, GrantedG: 15}); err != nil {
		t.Fatalf("UpsertBonusGrant: %v", err)
	}
	if err := s.UpsertBonusGrant(model.BonusGrant{Day: day, Kcal: 500, GrantedG: 20}); err != nil {
		t.Fatalf("UpsertBonusGrant (second): %v", err)
	}

	g, err := s.GrantForDay(day)
	if err != nil {
		t.Fatalf("GrantForDay: %v", err)
	}
	if g.GrantedG != 20 || g.Kcal != 500 {
		t.Errorf("grant = %+v, want granted 20 / kcal 500", g)
	}
}

func TestGrantForDay_MissingDayIsZero(t *testing.T) {
	s := openTestStore(t)
	g, err := s.GrantForDay("2024-01-01")
	if err != nil {
		t.Fatalf("GrantForDay: %v", err)
	}
	if g.GrantedG != 0 {
		t.Errorf("GrantedG = %d, want 0", g.GrantedG)
	}
}

func TestPriorSixGrants(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local)

	// Grants on two of the six prior days plus today (today must be excluded).
	for _, g := range []model.BonusGrant{
		{Day: pipeline.DayKey(now.AddDate(0, 0, -1)), Kcal: 200, GrantedG: 10},
		{Day: pipeline.DayKey(now.AddDate(0, 0, -6)), Kcal: 100, GrantedG: 5},
		{Day: pipeline.DayKey(now), Kcal: 400, GrantedG: 20},
		{Day: pipeline.DayKey(now.AddDate(0, 0, -7)), Kcal: 400, GrantedG: 20}, // outside window
	} {
		if err := s.UpsertBonusGrant(g); err != nil {
			t.Fatalf("UpsertBonusGrant: %v", err)
		}
	}

	grants, err := s.PriorSixGrants(now)
	if err != nil {
		t.Fatalf("PriorSixGrants: %v", err)
	}
	if len(grants) != 6 {
		t.Fatalf("len(grants) = %d, want 6", len(grants))
	}
	want := []int{5, 0, 0, 0, 0, 10} // oldest first
	for i := range want {
		if grants[i] != want[i] {
			t.Errorf("grants[%d] = %d, want %d", i, grants[i], want[i])
		}
	}
}
