// Package phrasebank persists the objective and title phrasing of accepted
// drafts so later runs can reuse wording that already passed review.
package phrasebank

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"blueprint/internal/draft"
	"blueprint/internal/validate"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

const schema = `
CREATE TABLE IF NOT EXISTS phrases (
	id         TEXT PRIMARY KEY,
	story_id   TEXT NOT NULL,
	coverage   TEXT NOT NULL,
	title      TEXT NOT NULL,
	objective  TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_phrases_coverage ON phrases(coverage, created_at);
`

// Bank stores draft phrasing in SQLite.
type Bank struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and ensures the schema exists.
// Creates the parent directory (e.g. .blueprint) if it does not exist.
func Open(path string) (*Bank, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create phrasebank dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create phrasebank schema: %w", err)
	}
	return &Bank{db: db}, nil
}

// Close closes the underlying database.
func (b *Bank) Close() error { return b.db.Close() }

// Record stores the title and objective of each draft under its derived
// coverage type.
func (b *Bank) Record(storyID string, drafts []draft.Draft) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin record: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(
		"INSERT INTO phrases(id, story_id, coverage, title, objective, created_at) VALUES(?,?,?,?,?,?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := nowUTC()
	for i := range drafts {
		d := &drafts[i]
		if _, err := stmt.Exec(uuid.NewString(), storyID, validate.CoverageTag(d), d.Title, d.Objective, now); err != nil {
			return fmt.Errorf("insert phrase for %s: %w", d.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record: %w", err)
	}
	return nil
}

// Suggest returns the most recently recorded objective for a coverage type,
// or "" if the bank has none.
func (b *Bank) Suggest(coverage string) (string, error) {
	var objective string
	err := b.db.QueryRow(
		"SELECT objective FROM phrases WHERE coverage = ? ORDER BY created_at DESC, id DESC LIMIT 1",
		coverage,
	).Scan(&objective)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("suggest %s: %w", coverage, err)
	}
	return objective, nil
}

// Count returns the number of stored phrases for a story.
func (b *Bank) Count(storyID string) (int, error) {
	var n int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM phrases WHERE story_id = ?", storyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count phrases: %w", err)
	}
	return n, nil
}
