package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// timeLayout is used for created_at. Fixed width so text order matches
// time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNotFound is returned by Get when no entry has the given id.
var ErrNotFound = errors.New("query not found")

// ListOptions filters List.
type ListOptions struct {
	// App restricts results to one app id. Empty means all apps.
	App string
	// Limit caps the number of entries, keeping the most recent ones.
	// Zero means no limit.
	Limit int
}

// List returns recorded queries ordered by seq ASC, id ASC COLLATE BINARY.
// With a Limit, the most recent entries are kept, still in ascending order.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	if opts.Limit < 0 {
		return nil, fmt.Errorf("list queries: negative limit %d", opts.Limit)
	}

	inner := `
		SELECT id, seq, app, source, query, created_at
		FROM queries
		WHERE (? = '' OR app = ?)
		ORDER BY seq DESC, id COLLATE BINARY DESC`
	args := []any{opts.App, opts.App}
	if opts.Limit > 0 {
		inner += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, app, source, query, created_at
		FROM (`+inner+`)
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query queries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate queries: %w", err)
	}

	// Return empty slice instead of nil
	if entries == nil {
		entries = []Entry{}
	}

	return entries, nil
}

// Get returns the entry with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, app, source, query, created_at
		FROM queries
		WHERE id = ?
	`, id)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// CreatedTime parses the entry's created_at.
func (e Entry) CreatedTime() (time.Time, error) {
	return time.Parse(timeLayout, e.CreatedAt)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var entry Entry
	err := row.Scan(
		&entry.ID,
		&entry.Seq,
		&entry.App,
		&entry.Source,
		&entry.Query,
		&entry.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, err
	}
	if err != nil {
		return Entry{}, fmt.Errorf("scan query: %w", err)
	}
	return entry, nil
}
