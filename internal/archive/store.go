// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps historical appraisal write-ups in a local SQLite
// database so they can be browsed by region, year, and rank. The archive is
// populated from a CSV export of the shared spreadsheet.
package archive

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/appraisal-writer/pkg/types"
)

const dbFile = "archive.db"

// Column headings expected in the CSV export, in their canonical order.
const (
	ColRegion = "總區"
	ColYear   = "年份"
	ColRank   = "職級"
	ColTitle  = "標題"
	ColBody   = "考績文章"
)

var expectedColumns = []string{ColRegion, ColYear, ColRank, ColTitle, ColBody}

// ErrSchemaMismatch is returned when the CSV export lacks expected columns.
var ErrSchemaMismatch = errors.New("archive export is missing columns")

// fallbackYears is offered for filtering when the archive is empty.
var fallbackYears = []string{"2025", "2024", "2023"}

// Store manages the archive SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates dir/archive.db and its schema.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "archive"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			region TEXT NOT NULL,
			year TEXT NOT NULL,
			rank TEXT NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_year_rank ON entries(year, rank)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds counts from an archive import.
type ImportSummary struct {
	Imported int
	Skipped  int
}

// Import replaces the archive contents with the rows of a CSV export read
// from r. The header row must contain every expected column; extra columns
// are ignored. Rows with an empty title and body are skipped. Progress is
// written to w.
func (s *Store) Import(ctx context.Context, r io.Reader, w io.Writer) (ImportSummary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ImportSummary{}, fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(expectedColumns, ", "))
		}
		return ImportSummary{}, fmt.Errorf("reading header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return ImportSummary{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return ImportSummary{}, fmt.Errorf("clearing archive: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (region, year, rank, title, body) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var summary ImportSummary
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("reading row %d: %w", line, err)
		}

		e := cols.entry(record)
		if e.Title == "" && e.Body == "" {
			fmt.Fprintf(w, "skipped row %d: empty title and body\n", line)
			summary.Skipped++
			continue
		}
		if _, err := stmt.ExecContext(ctx, e.Region, e.Year, e.Rank, e.Title, e.Body); err != nil {
			return summary, fmt.Errorf("inserting row %d: %w", line, err)
		}
		summary.Imported++
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing import: %w", err)
	}

	fmt.Fprintf(w, "imported: %d, skipped: %d\n", summary.Imported, summary.Skipped)
	return summary, nil
}

// columns maps expected headings to record positions.
type columns map[string]int

func columnIndex(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}

	var missing []string
	for _, c := range expectedColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c columns) field(record []string, name string) string {
	i := c[name]
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (c columns) entry(record []string) types.ArchiveEntry {
	return types.ArchiveEntry{
		Region: c.field(record, ColRegion),
		Year:   c.field(record, ColYear),
		Rank:   c.field(record, ColRank),
		Title:  c.field(record, ColTitle),
		Body:   c.field(record, ColBody),
	}
}
