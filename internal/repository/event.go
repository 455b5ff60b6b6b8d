package repository

import (
	"context"
	"database/sql"

	"github.com/vaultpass/pwgen-go/internal/model"
)

// DefaultHistoryLimit and MaxHistoryLimit bound ListByUser.
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// EventRepository stores the generation audit log.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Record inserts event and fills in its generated ID.
func (r *EventRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO generation_events (user_id, length, amount, flags, outcome, error_code)
		VALUES (?, ?, ?, ?, ?, ?)`,
		nullableID(event.UserID), event.Length, event.Amount, event.Flags, event.Outcome, event.ErrorCode,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	event.ID = id
	return nil
}

// ListByUser returns the most recent events of a user, newest first.
func (r *EventRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]model.GenerationEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, length, amount, flags, outcome, error_code, created_at
		FROM generation_events WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, clampLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.GenerationEvent
	for rows.Next() {
		var (
			e   model.GenerationEvent
			uid sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &uid, &e.Length, &e.Amount, &e.Flags, &e.Outcome, &e.ErrorCode, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.UserID = uid.Int64
		events = append(events, e)
	}
	return events, rows.Err()
}

func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}
