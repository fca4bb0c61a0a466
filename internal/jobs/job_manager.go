package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleSessionJob *StaleSessionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	openSessionsHandler queries.GetOpenSessionsQueryHandler,
	monitorSpec string,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleSessionJob: NewStaleSessionJob(openSessionsHandler, monitorSpec, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleSessionJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale session monitor: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleSessionJob.Stop()
}
