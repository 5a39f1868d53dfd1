// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists conversion records in a SQLite database so batch
// runs over a dataset can be audited later: which captures were converted,
// with what inferred precision, and how many strokes and points each carried.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lnguyen/ink-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "ink.db"
)

// Store manages the conversion catalog SQLite database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// NewStore opens or creates the catalog database at dataDir/index/ink.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dataDir:    cfg.DataDir,
		maxResults: maxResults,
	}

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
	const stmt = `CREATE TABLE IF NOT EXISTS conversions (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		input_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		precision INTEGER NOT NULL,
		strokes INTEGER NOT NULL,
		points INTEGER NOT NULL,
		converted_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one conversion into the catalog. Converting the same input
// again inserts a new row; the catalog is a run log, not a unique index.
func (s *Store) Record(conv types.Conversion) error {
	_, err := s.db.Exec(
		`INSERT INTO conversions (input_path, output_path, precision, strokes, points, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		conv.InputPath, conv.OutputPath, conv.Precision, conv.Strokes, conv.Points,
		conv.ConvertedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion for %s: %w", conv.InputPath, err)
	}
	return nil
}

// List returns the most recent conversions, newest first. A limit of 0 uses
// the configured default; a negative limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]types.Conversion, error) {
	if limit == 0 {
		limit = s.maxResults
	}
	if limit < 0 {
		limit = -1 // SQLite treats negative LIMIT as unbounded
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT input_path, output_path, precision, strokes, points, converted_at
		 FROM conversions ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var convs []types.Conversion
	for rows.Next() {
		var c types.Conversion
		var ts string
		if err := rows.Scan(&c.InputPath, &c.OutputPath, &c.Precision, &c.Strokes, &c.Points, &ts); err != nil {
			return nil, fmt.Errorf("scanning conversion row: %w", err)
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		c.ConvertedAt = t
		convs = append(convs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversions: %w", err)
	}
	return convs, nil
}
