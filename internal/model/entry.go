// Package model defines the plain data types shared across sugarcap.
package model

import "time"

// Entry source tags.
const (
	SourceManual = "manual"
	SourceImport = "import"
	SourcePreset = "preset"
)

// Entry is a single logged consumption of added sugar. Entries form an
// append/remove-only ledger; ordering is display-only and all aggregation
// is by the calendar day of LoggedAt.
type Entry struct {
	ID       string // unique, assigned at creation, never reused
	LoggedAt time.Time
	Item     string
	SugarG   int // grams, non-negative
	Source   string
}

// BonusGrant is the capped activity bonus recorded for one calendar day.
type BonusGrant struct {
	Day      string // 2006-01-02, local
	Kcal     float64
	GrantedG int
}
