// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists diff build outcomes in a local SQLite
// database. Recording is best-effort: the build command treats any
// history failure as a warning, never a build failure.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperdiff/pkg/types"
)

const dbFile = "history.db"

// Store manages the build history SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, dir: cfg.Dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS builds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			old_dir TEXT NOT NULL,
			new_dir TEXT NOT NULL,
			basename TEXT NOT NULL,
			status TEXT NOT NULL,
			warnings INTEGER NOT NULL,
			typeset_passes INTEGER NOT NULL,
			bibliography_runs INTEGER NOT NULL,
			pdf_path TEXT,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_builds_started_at ON builds(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one build outcome and returns its assigned ID.
func (s *Store) Record(ctx context.Context, rec types.BuildRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO builds
			(started_at, old_dir, new_dir, basename, status, warnings,
			 typeset_passes, bibliography_runs, pdf_path, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.OldDir, rec.NewDir, rec.Basename, string(rec.Status),
		rec.Warnings, rec.TypesetPasses, rec.BibliographyRuns,
		rec.PDFPath, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting build record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading build record id: %w", err)
	}
	return id, nil
}

// Recent returns the latest builds, newest first. A non-positive limit
// falls back to the configured default.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.BuildRecord, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, old_dir, new_dir, basename, status, warnings,
		        typeset_passes, bibliography_runs, pdf_path, duration_ms
		 FROM builds ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	defer rows.Close()

	var records []types.BuildRecord
	for rows.Next() {
		var rec types.BuildRecord
		var startedAt, status string
		var pdfPath sql.NullString
		var durationMS int64
		if err := rows.Scan(&rec.ID, &startedAt, &rec.OldDir, &rec.NewDir,
			&rec.Basename, &status, &rec.Warnings, &rec.TypesetPasses,
			&rec.BibliographyRuns, &pdfPath, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning build record: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			rec.StartedAt = ts
		}
		rec.Status = types.BuildStatus(status)
		rec.PDFPath = pdfPath.String
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating build records: %w", err)
	}
	return records, nil
}
