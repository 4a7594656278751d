package commands

import (
	"context"
	"log/slog"

	"radiopharm/internal/core/domain/services"
)

// RunArchivalSweepCommandHandler reclassifies the archive state of
// every reactor cycle in one transaction. Only cycles whose
// classification actually changed are written back.
type RunArchivalSweepCommandHandler struct {
	uowFactory CycleUoWFactory
	classifier services.ArchivalClassifier
	logger     *slog.Logger
}

// NewRunArchivalSweepCommandHandler creates a handler for archival sweeps.
func NewRunArchivalSweepCommandHandler(
	uowFactory CycleUoWFactory,
	classifier services.ArchivalClassifier,
	logger *slog.Logger,
) RunArchivalSweepCommandHandler {
	return RunArchivalSweepCommandHandler{
		uowFactory: uowFactory,
		classifier: classifier,
		logger:     logger.With("component", "archival_sweep"),
	}
}

// Handle runs the sweep and returns the number of cycles whose archive
// state changed.
func (h RunArchivalSweepCommandHandler) Handle(ctx context.Context, cmd RunArchivalSweepCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cycleRepo := uow.ReactorCycleRepository()
	cycles, err := cycleRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	changedCount := 0
	for _, cycle := range cycles {
		changed, classifyErr := h.classifier.Classify(cycle, cmd.Day())
		if classifyErr != nil {
			return 0, classifyErr
		}
		if !changed {
			continue
		}

		if err = cycleRepo.Update(ctx, cycle); err != nil {
			return 0, err
		}
		changedCount++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	if changedCount > 0 {
		h.logger.InfoContext(ctx, "Archival sweep reclassified cycles", "changed", changedCount)
	}

	return changedCount, nil
}
