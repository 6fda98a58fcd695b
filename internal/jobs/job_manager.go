package jobs

import (
	"fmt"
	"log/slog"

	"drayage/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dispatchStatusJob *DispatchStatusJob
}

// NewJobManager wires every job from its dependencies.
func NewJobManager(
	counter StatusCounter,
	metrics ports.DispatchMetrics,
	statusSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchStatusJob: NewDispatchStatusJob(counter, metrics, statusSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch status job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchStatusJob.Stop()
}
