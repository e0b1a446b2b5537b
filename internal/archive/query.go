// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/appraisal-writer/pkg/types"
)

// Filter selects archive entries. Empty fields match everything.
type Filter struct {
	// Region matches entries whose region contains it. A trailing 總區 is
	// ignored so "九龍總區" and "九龍" select the same entries.
	Region string

	// Year and Rank match exactly.
	Year string
	Rank string
}

// regionKey strips the 總區 suffix used in the region picker.
func regionKey(region string) string {
	return strings.TrimSuffix(strings.TrimSpace(region), "總區")
}

// Query returns entries matching f, newest year first, then by title.
func (s *Store) Query(ctx context.Context, f Filter) ([]types.ArchiveEntry, error) {
	var (
		where []string
		args  []any
	)
	if key := regionKey(f.Region); key != "" {
		where = append(where, `instr(region, ?) > 0`)
		args = append(args, key)
	}
	if f.Year != "" {
		where = append(where, `year = ?`)
		args = append(args, f.Year)
	}
	if f.Rank != "" {
		where = append(where, `rank = ?`)
		args = append(args, f.Rank)
	}

	q := `SELECT region, year, rank, title, body FROM entries`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, ` AND `)
	}
	q += ` ORDER BY year DESC, title, id`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var entries []types.ArchiveEntry
	for rows.Next() {
		var e types.ArchiveEntry
		if err := rows.Scan(&e.Region, &e.Year, &e.Rank, &e.Title, &e.Body); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Years returns the distinct years in the archive, newest first. An empty
// archive yields a fixed list of recent years.
func (s *Store) Years(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT year FROM entries WHERE year <> '' ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing years: %w", err)
	}
	defer rows.Close()

	var years []string
	for rows.Next() {
		var y string
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scanning year: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(years) == 0 {
		return append([]string(nil), fallbackYears...), nil
	}
	return years, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}
