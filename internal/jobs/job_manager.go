package jobs

import (
	"fmt"
	"log/slog"

	"radiopharm/internal/core/application/usecases/commands"
	"radiopharm/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	archivalSweepJob *ArchivalSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.RunArchivalSweepCommandHandler,
	clock ports.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		archivalSweepJob: NewArchivalSweepJob(sweepHandler, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.archivalSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start archival sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.archivalSweepJob.Stop()
}
