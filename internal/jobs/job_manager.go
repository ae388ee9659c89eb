package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePendingJob *StalePendingReminderJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	lister deliveryRequestLister,
	schedule string,
	threshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePendingJob: NewStalePendingReminderJob(lister, schedule, threshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePendingJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pending reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePendingJob.Stop()
}
