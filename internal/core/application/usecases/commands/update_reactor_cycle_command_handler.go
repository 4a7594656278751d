package commands

import (
	"context"
	"log/slog"

	"radiopharm/internal/core/domain/model/reactorcycle"
)

// UpdateReactorCycleCommandHandler edits a reactor cycle in place. The
// cycle is loaded under a row lock so an edit never interleaves with a
// concurrent allocation against the same cycle.
//
// Changing the enable flag here does not touch archive state; the
// archival sweep picks the change up on its next pass.
type UpdateReactorCycleCommandHandler struct {
	uowFactory CycleAdminUoWFactory
	logger     *slog.Logger
}

// NewUpdateReactorCycleCommandHandler creates a handler for cycle edits.
func NewUpdateReactorCycleCommandHandler(
	uowFactory CycleAdminUoWFactory,
	logger *slog.Logger,
) UpdateReactorCycleCommandHandler {
	return UpdateReactorCycleCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_reactor_cycle"),
	}
}

// Handle applies the provided edits and returns the updated cycle.
func (h UpdateReactorCycleCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateReactorCycleCommand,
) (*reactorcycle.ReactorCycle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cycleRepo := uow.ReactorCycleRepository()
	cycle, err := cycleRepo.GetForUpdate(ctx, cmd.CycleID())
	if err != nil {
		return nil, err
	}

	if err = h.applyEdits(ctx, uow, cycle, cmd); err != nil {
		return nil, err
	}

	if err = cycleRepo.Update(ctx, cycle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Reactor cycle updated", "cycle", cycle.Name(), "id", cycle.ID())
	return cycle, nil
}

func (h UpdateReactorCycleCommandHandler) applyEdits(
	ctx context.Context,
	uow CycleAdminUoW,
	cycle *reactorcycle.ReactorCycle,
	cmd UpdateReactorCycleCommand,
) error {
	if name := cmd.Name(); name != nil {
		if err := cycle.Rename(*name); err != nil {
			return err
		}
	}

	if reactorID := cmd.ReactorID(); reactorID != nil {
		if _, err := uow.ReactorRepository().Get(ctx, *reactorID); err != nil {
			return err
		}
		if err := cycle.ReassignReactor(*reactorID); err != nil {
			return err
		}
	}

	if mass := cmd.Mass(); mass != nil {
		if err := cycle.SetMass(*mass); err != nil {
			return err
		}
	}

	if window := cmd.Window(); window != nil {
		if err := cycle.ChangeWindow(*window); err != nil {
			return err
		}
	}

	if enabled := cmd.IsEnabled(); enabled != nil {
		if *enabled {
			cycle.Enable()
		} else {
			cycle.Disable()
		}
	}

	return nil
}
