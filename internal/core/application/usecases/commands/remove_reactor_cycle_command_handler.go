package commands

import (
	"context"
	"log/slog"
)

// RemoveReactorCycleCommandHandler soft-deletes a reactor cycle.
type RemoveReactorCycleCommandHandler struct {
	uowFactory CycleUoWFactory
	logger     *slog.Logger
}

// NewRemoveReactorCycleCommandHandler creates a handler for cycle removal.
func NewRemoveReactorCycleCommandHandler(
	uowFactory CycleUoWFactory,
	logger *slog.Logger,
) RemoveReactorCycleCommandHandler {
	return RemoveReactorCycleCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "remove_reactor_cycle"),
	}
}

// Handle removes the cycle. Removing an absent cycle returns the
// repository's not found error.
func (h RemoveReactorCycleCommandHandler) Handle(ctx context.Context, cmd RemoveReactorCycleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cycleRepo := uow.ReactorCycleRepository()
	if _, err := cycleRepo.Get(ctx, cmd.CycleID()); err != nil {
		return err
	}

	if err := cycleRepo.Remove(ctx, cmd.CycleID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Reactor cycle removed", "id", cmd.CycleID())
	return nil
}
