package jobs

import (
	"context"
	"fmt"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
)

// MarkOverdueRentals flips APPROVED rentals past their return date to OVERDUE
// and puts their vehicles back on the available list.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		rentals, err := jr.rentals.MarkOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}

		logger.Info("Marked rentals as overdue", "count", len(rentals))
		for _, rt := range rentals {
			msg := fmt.Sprintf("Rental %d overdue since %s", rt.ID, rt.ReturnDate.Format("2006-01-02"))
			if err := jr.audit.Insert(ctx, domain.AuditRentalOverdue, msg, &rt.UserID); err != nil {
				logger.Warn("Failed to record overdue audit event", "rental_id", rt.ID, "error", err)
			}
			logger.Debug("Marked rental as overdue",
				"rental_id", rt.ID,
				"user_id", rt.UserID,
				"vehicle_id", rt.VehicleID,
				"return_date", rt.ReturnDate.Format("2006-01-02"))
		}
	})
}

// ExpireStalePendingRentals cancels PENDING rentals older than the configured
// age and refunds the renters.
func (jr *JobRunner) ExpireStalePendingRentals() {
	jr.runWithRecovery("ExpireStalePendingRentals", func() {
		ctx := context.Background()

		maxAge := time.Duration(jr.config.Scheduler.PendingMaxAgeHours) * time.Hour
		cutoff := time.Now().Add(-maxAge)

		rentals, err := jr.rentals.ExpireStalePending(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale pending rentals", "error", err)
			return
		}

		logger.Info("Expired stale pending rentals", "count", len(rentals), "max_age_hours", jr.config.Scheduler.PendingMaxAgeHours)
		for _, rt := range rentals {
			msg := fmt.Sprintf("Rental %d expired unapproved, refunded %d cents", rt.ID, rt.TotalCents)
			if err := jr.audit.Insert(ctx, domain.AuditRentalExpired, msg, &rt.UserID); err != nil {
				logger.Warn("Failed to record expiry audit event", "rental_id", rt.ID, "error", err)
			}
			logger.Debug("Expired pending rental",
				"rental_id", rt.ID,
				"user_id", rt.UserID,
				"refund_cents", rt.TotalCents)
		}
	})
}
