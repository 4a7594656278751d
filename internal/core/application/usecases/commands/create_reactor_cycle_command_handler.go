package commands

import (
	"context"
	"log/slog"

	"radiopharm/internal/core/domain/model/reactorcycle"
)

// CreateReactorCycleCommandHandler registers a new reactor cycle under
// an existing reactor. Cycle names are unique across the catalogue; a
// duplicate surfaces as a Conflict error from the repository.
type CreateReactorCycleCommandHandler struct {
	uowFactory CycleAdminUoWFactory
	logger     *slog.Logger
}

// NewCreateReactorCycleCommandHandler creates a handler for cycle creation.
func NewCreateReactorCycleCommandHandler(
	uowFactory CycleAdminUoWFactory,
	logger *slog.Logger,
) CreateReactorCycleCommandHandler {
	return CreateReactorCycleCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_reactor_cycle"),
	}
}

// Handle creates the cycle and returns it with its assigned identity.
func (h CreateReactorCycleCommandHandler) Handle(
	ctx context.Context,
	cmd CreateReactorCycleCommand,
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

	if _, err := uow.ReactorRepository().Get(ctx, cmd.ReactorID()); err != nil {
		return nil, err
	}

	cycle, err := reactorcycle.NewReactorCycle(cmd.Name(), cmd.ReactorID(), cmd.Mass(), cmd.Window())
	if err != nil {
		return nil, err
	}

	if err = uow.ReactorCycleRepository().Add(ctx, cycle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Reactor cycle created", "cycle", cycle.Name(), "id", cycle.ID())
	return cycle, nil
}
