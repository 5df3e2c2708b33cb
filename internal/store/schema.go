package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    id         TEXT PRIMARY KEY,
    logged_at  TEXT NOT NULL,
    item       TEXT NOT NULL,
    sugar_g    INTEGER NOT NULL,
    source     TEXT NOT NULL DEFAULT 'manual'
);

CREATE TABLE IF NOT EXISTS bonus_grants (
    day        TEXT PRIMARY KEY,
    kcal       REAL NOT NULL,
    granted_g  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_logged_at ON entries(logged_at);
`
