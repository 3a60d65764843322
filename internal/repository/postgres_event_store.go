package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
)

// postgresEventStore persists raw events as jsonb so the loosely-typed
// payload survives round-trips unchanged. A bigserial seq column preserves
// insertion order across connections.
type postgresEventStore struct {
	db *sqlx.DB
}

func NewPostgresEventStore(db *sqlx.DB) EventStore {
	return &postgresEventStore{db: db}
}

type eventRow struct {
	Seq       int64     `db:"seq"`
	Payload   []byte    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *postgresEventStore) Append(ctx context.Context, event entity.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	query := `INSERT INTO events (payload, created_at) VALUES ($1, $2)`
	if _, err := s.db.ExecContext(ctx, query, payload, time.Now()); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (s *postgresEventStore) List(ctx context.Context) ([]entity.Event, error) {
	var rows []eventRow
	query := `SELECT seq, payload, created_at FROM events ORDER BY seq`

	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]entity.Event, 0, len(rows))
	for _, row := range rows {
		var ev entity.Event
		if err := json.Unmarshal(row.Payload, &ev); err != nil {
			// A row that no longer decodes contributes nothing, same as a
			// malformed field on ingest.
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func (s *postgresEventStore) Len(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM events`); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

func (s *postgresEventStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `TRUNCATE events`); err != nil {
		return fmt.Errorf("failed to reset events: %w", err)
	}
	return nil
}
