package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Entry is one recorded query.
type Entry struct {
	ID        string `json:"id"`
	Seq       int64  `json:"seq"`
	App       string `json:"app,omitempty"`
	Source    string `json:"source,omitempty"`
	Query     string `json:"query"`
	CreatedAt string `json:"created_at"`
}

// Record appends a built query to the journal. The entry gets a UUIDv7 id
// and the next seq from the store's clock.
func (s *Store) Record(ctx context.Context, app, source, query string) (Entry, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Entry{}, fmt.Errorf("record query: %w", err)
	}

	entry := Entry{
		ID:        id.String(),
		Seq:       s.clock.Next(),
		App:       app,
		Source:    source,
		Query:     query,
		CreatedAt: s.now().Format(timeLayout),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO queries (id, seq, app, source, query, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		entry.ID,
		entry.Seq,
		entry.App,
		entry.Source,
		entry.Query,
		entry.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("record query: %w", err)
	}

	slog.Debug("recorded query", "id", entry.ID, "seq", entry.Seq, "app", entry.App)
	return entry, nil
}
