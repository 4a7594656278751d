package jobs

import (
	"context"
	"log/slog"
	"time"

	"radiopharm/internal/core/application/usecases/commands"
	"radiopharm/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ArchivalSweepJob runs the archival sweep every night at midnight,
// moving expired and disabled cycles out of circulation and reviving
// re-enabled ones.
type ArchivalSweepJob struct {
	handler commands.RunArchivalSweepCommandHandler
	clock   ports.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewArchivalSweepJob creates the nightly archival sweep job.
func NewArchivalSweepJob(
	handler commands.RunArchivalSweepCommandHandler,
	clock ports.Clock,
	logger *slog.Logger,
) *ArchivalSweepJob {
	return &ArchivalSweepJob{
		handler: handler,
		clock:   clock,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "archival_sweep_job"),
	}
}

// Start schedules the sweep for midnight every day and runs one sweep
// immediately, so a restart never leaves stale archive state until the
// next midnight.
func (j *ArchivalSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", j.runSweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archival sweep job started (running daily at midnight)")

	go j.runSweep()
	return nil
}

// Stop stops the archival sweep job.
func (j *ArchivalSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Archival sweep job stopped")
}

func (j *ArchivalSweepJob) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cmd, err := commands.NewRunArchivalSweepCommand(j.clock.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Archival sweep job failed to build command", "error", err)
		return
	}

	if _, err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Archival sweep job failed", "error", err)
	}
}
