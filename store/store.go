// Package store keeps an optional SQLite archive of scraped records. The
// archive is off by default; the scraper only persists between runs when
// the operator points it at a database file.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"olxgrab/record"
)

// Archive persists scraped records across runs using SQLite.
type Archive struct {
	db *sql.DB
}

// Open opens (or creates) the archive database at path.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := &Archive{db: db}
	if err := a.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return a, nil
}

// initSchema creates the records table if it doesn't exist.
func (a *Archive) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		title TEXT NOT NULL,
		price TEXT,
		location TEXT,
		url TEXT,
		image_url TEXT,
		scraped_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id);
	`

	_, err := a.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveAll inserts every record under the given run id in one transaction.
func (a *Archive) SaveAll(runID uuid.UUID, records []record.Record) error {
	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
	INSERT INTO records (id, run_id, title, price, location, url, image_url, scraped_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, rec := range records {
		_, err := stmt.Exec(uuid.New().String(), runID.String(),
			rec.Title, rec.Price, rec.Location, rec.URL, rec.ImageURL, now)
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	return tx.Commit()
}

// CountForRun returns how many records a run archived.
func (a *Archive) CountForRun(runID uuid.UUID) (int, error) {
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM records WHERE run_id = ?", runID.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// ListForRun returns the records archived under one run id in insertion
// order.
func (a *Archive) ListForRun(runID uuid.UUID) ([]record.Record, error) {
	rows, err := a.db.Query(`
	SELECT title, price, location, url, image_url
	FROM records WHERE run_id = ? ORDER BY rowid`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		var rec record.Record
		if err := rows.Scan(&rec.Title, &rec.Price, &rec.Location, &rec.URL, &rec.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
