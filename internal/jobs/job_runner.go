package jobs

import (
	"log/slog"

	"rentwheels-backend/internal/config"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
)

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	rentals repository.RentalRepository
	audit   repository.AuditRepository
	config  *config.Config
	log     *slog.Logger
}

func NewJobRunner(rentals repository.RentalRepository, audit repository.AuditRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentals: rentals,
		audit:   audit,
		config:  cfg,
		log:     logger.WithService("cronjob"),
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so one bad run
// never takes the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.log.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.log.Info("Starting job", "job", jobName)
	jobFunc()
	jr.log.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs every nightly job once, for manual execution.
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkOverdueRentals()
	jr.ExpireStalePendingRentals()
}
