package webhooks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines webhook event data access
type Repository interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)
	ListEvents(ctx context.Context) ([]Event, error)
	SaveEvent(ctx context.Context, event *Event) error
	GetUnresolvedRetries(ctx context.Context, limit int) ([]Event, error)
}

// NewPostgresRepository creates a sqlx-backed webhook repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

type postgresRepository struct {
	db *sqlx.DB
}

func (r *postgresRepository) GetEvent(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.GetContext(ctx, &event, `
		SELECT id, endpoint, event_type, status, retry_phase, retry_count,
		       max_retries, next_retry_at, payload, created_at, updated_at
		FROM webhook_events WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load webhook event %s: %w", id, err)
	}
	return &event, nil
}

func (r *postgresRepository) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	err := r.db.SelectContext(ctx, &events, `
		SELECT id, endpoint, event_type, status, retry_phase, retry_count,
		       max_retries, next_retry_at, payload, created_at, updated_at
		FROM webhook_events ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook events: %w", err)
	}
	return events, nil
}

func (r *postgresRepository) SaveEvent(ctx context.Context, event *Event) error {
	event.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, `
		UPDATE webhook_events
		SET status = $2, retry_phase = $3, retry_count = $4,
		    next_retry_at = $5, updated_at = $6
		WHERE id = $1`,
		event.ID, event.Status, event.RetryPhase, event.RetryCount,
		event.NextRetryAt, event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save webhook event %s: %w", event.ID, err)
	}
	return nil
}

func (r *postgresRepository) GetUnresolvedRetries(ctx context.Context, limit int) ([]Event, error) {
	var events []Event
	err := r.db.SelectContext(ctx, &events, `
		SELECT id, endpoint, event_type, status, retry_phase, retry_count,
		       max_retries, next_retry_at, payload, created_at, updated_at
		FROM webhook_events
		WHERE retry_phase = $1 AND next_retry_at <= NOW()
		ORDER BY next_retry_at ASC
		LIMIT $2`, PhaseRequested, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved retries: %w", err)
	}
	return events, nil
}
