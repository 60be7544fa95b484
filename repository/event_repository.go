// ABOUTME: PostgreSQL implementation of EventRepository interface
// ABOUTME: Persists emitted trigger events as durable execution records

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"youtube-trigger-sidecar/models"
)

// PostgreSQLEventRepository implements EventRepository using PostgreSQL
type PostgreSQLEventRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLEventRepository creates a new PostgreSQL event repository
func NewPostgreSQLEventRepository(db *sql.DB, logger *slog.Logger) EventRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgreSQLEventRepository{
		db:     db,
		logger: logger,
	}
}

// OpenEventStore opens the Postgres connection used for trigger event records
func OpenEventStore(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open event store: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	return db, nil
}

// SaveEvent persists one emitted trigger event and returns its handle
func (r *PostgreSQLEventRepository) SaveEvent(ctx context.Context, event *models.TriggerEvent) (uuid.UUID, error) {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to serialize event payload: %w", err)
	}

	query := `
		INSERT INTO trigger_events (
			id, trigger_name, representative_id, new_item_count, payload, emitted_at
		) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		event.ID,
		event.TriggerName,
		event.RepresentativeID,
		event.NewItemCount,
		payload,
		event.EmittedAt,
	)

	if err != nil {
		r.logger.Error("Failed to save trigger event",
			"trigger_name", event.TriggerName,
			"representative_id", event.RepresentativeID,
			"error", err)
		return uuid.Nil, fmt.Errorf("failed to save trigger event: %w", err)
	}

	r.logger.Debug("Saved trigger event",
		"event_id", event.ID,
		"trigger_name", event.TriggerName,
		"new_item_count", event.NewItemCount)

	return event.ID, nil
}
