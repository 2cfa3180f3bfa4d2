package service

import (
	"context"

	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
)

// recordAudit appends an audit event after a successful mutation. Audit
// failures are logged and swallowed so they can never fail the primary
// operation.
func recordAudit(ctx context.Context, repo repository.AuditRepository, eventType, message string, userID int32) {
	var uid *int32
	if userID > 0 {
		uid = &userID
	}
	if err := repo.Insert(ctx, eventType, message, uid); err != nil {
		logger.Warn("Failed to record audit event", "event_type", eventType, "error", err)
	}
}
