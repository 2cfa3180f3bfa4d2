package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type auditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Insert(ctx context.Context, eventType, message string, userID *int32) error {
	query := `INSERT INTO audit_events (event_type, message, user_id, created_on) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, eventType, message, userID, time.Now())
	return err
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int32) ([]domain.AuditEvent, error) {
	query := `SELECT id, event_type, message, user_id, created_on
	          FROM audit_events ORDER BY created_on DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var e domain.AuditEvent
		if err := rows.Scan(&e.ID, &e.EventType, &e.Message, &e.UserID, &e.CreatedOn); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
