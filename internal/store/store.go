// Package store provides the SQLite-backed consumption ledger and
// activity bonus history.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/mvickers/sugarcap/internal/model"
	"github.com/mvickers/sugarcap/internal/pipeline"
)

// Store wraps the ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the ledger database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddEntry inserts a consumption entry, assigning a fresh identifier.
// Returns the stored entry.
func (s *Store) AddEntry(loggedAt time.Time, item string, sugarG int, source string) (model.Entry, error) {
	if item == "" {
		return model.Entry{}, fmt.Errorf("entry item must not be empty")
	}
	if sugarG <= 0 {
		return model.Entry{}, fmt.Errorf("entry sugar amount must be positive, got %d", sugarG)
	}

	e := model.Entry{
		ID:       uuid.NewString(),
		LoggedAt: loggedAt,
		Item:     item,
		SugarG:   sugarG,
		Source:   source,
	}

	_, err := s.db.Exec(
		`INSERT INTO entries (id, logged_at, item, sugar_g, source) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.LoggedAt.UTC().Format(time.RFC3339), e.Item, e.SugarG, e.Source,
	)
	if err != nil {
		return model.Entry{}, fmt.Errorf("inserting entry: %w", err)
	}
	return e, nil
}

// AddEntries inserts a batch of entries in one transaction, e.g. from an
// import. Returns the number inserted.
func (s *Store) AddEntries(entries []model.Entry) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for _, e := range entries {
		if e.Item == "" || e.SugarG <= 0 {
			continue
		}
		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := tx.Exec(
			`INSERT INTO entries (id, logged_at, item, sugar_g, source) VALUES (?, ?, ?, ?, ?)`,
			id, e.LoggedAt.UTC().Format(time.RFC3339), e.Item, e.SugarG, e.Source,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting entry %q: %w", e.Item, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// DeleteEntry removes an entry by identifier. Returns false if no entry
// had that identifier.
func (s *Store) DeleteEntry(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListEntries reads the full ledger. Order is unspecified; display code
// sorts as needed.
func (s *Store) ListEntries() ([]model.Entry, error) {
	rows, err := s.db.Query(`SELECT id, logged_at, item, sugar_g, source FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		var loggedAt string
		if err := rows.Scan(&e.ID, &loggedAt, &e.Item, &e.SugarG, &e.Source); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, loggedAt)
		if err != nil {
			return nil, fmt.Errorf("entry %s has bad timestamp %q: %w", e.ID, loggedAt, err)
		}
		e.LoggedAt = ts
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// EntryCount returns the number of ledger entries.
func (s *Store) EntryCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count)
	return count, err
}

// UpsertBonusGrant records the capped bonus for a calendar day,
// overwriting any prior grant for that day. Recomputing within the same
// day is idempotent by construction.
func (s *Store) UpsertBonusGrant(g model.BonusGrant) error {
	_, err := s.db.Exec(
		`INSERT INTO bonus_grants (day, kcal, granted_g) VALUES (?, ?, ?)
		 ON CONFLICT(day) DO UPDATE SET kcal = excluded.kcal, granted_g = excluded.granted_g`,
		g.Day, g.Kcal, g.GrantedG,
	)
	if err != nil {
		return fmt.Errorf("recording bonus grant: %w", err)
	}
	return nil
}

// GrantForDay returns the grant recorded for a day key, or zero values.
func (s *Store) GrantForDay(day string) (model.BonusGrant, error) {
	var g model.BonusGrant
	err := s.db.QueryRow(
		`SELECT day, kcal, granted_g FROM bonus_grants WHERE day = ?`, day,
	).Scan(&g.Day, &g.Kcal, &g.GrantedG)
	if err == sql.ErrNoRows {
		return model.BonusGrant{Day: day}, nil
	}
	if err != nil {
		return g, fmt.Errorf("reading bonus grant: %w", err)
	}
	return g, nil
}

// PriorSixGrants returns the granted grams for the 6 calendar days before
// now, oldest first. Days with no grant contribute zero.
func (s *Store) PriorSixGrants(now time.Time) ([]int, error) {
	grants := make([]int, 0, 6)
	for offset := -6; offset <= -1; offset++ {
		day := pipeline.DayKey(now.AddDate(0, 0, offset))
		g, err := s.GrantForDay(day)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g.GrantedG)
	}
	return grants, nil
}
