package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderWatchdog *StaleOrderWatchdogJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(orders pendingOrderLister, staleThreshold time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		staleOrderWatchdog: NewStaleOrderWatchdogJob(orders, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderWatchdog.Start(); err != nil {
		return fmt.Errorf("failed to start stale order watchdog: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderWatchdog.Stop()
}
