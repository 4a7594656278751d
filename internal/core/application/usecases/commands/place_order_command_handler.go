package commands

import (
	"context"
	"log/slog"

	"radiopharm/internal/core/domain/model/order"
	"radiopharm/internal/core/ports"
	"radiopharm/internal/pkg/errs"
)

// ErrCycleReactorMismatch is returned when the requested reactor cycle
// does not belong to the requested reactor.
var ErrCycleReactorMismatch = errs.NewConflictError(
	"reactor cycle does not belong to the requested reactor")

// PlaceOrderCommandHandler orchestrates order placement: it resolves the
// clinic, reactor, and cycle, checks and debits the cycle's capacity,
// and creates the order — all in one transaction. The cycle row is
// locked for the duration of the check-then-debit sequence, so two
// concurrent placements can never both succeed on mass that only covers
// one of them.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, sink, clock, logger)
//	placed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // clinic, reactor, or cycle missing
//	case errors.Is(err, errs.ErrConflict):
//	    // mismatch or unavailable capacity; err carries the reason
//	case err != nil:
//	    // unexpected failure, nothing was applied
//	default:
//	    fmt.Println("placed", placed.Number())
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	eventSink  ports.EventSink
	clock      ports.Clock
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	eventSink ports.EventSink,
	clock ports.Clock,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		eventSink:  eventSink,
		clock:      clock,
		logger:     logger.With("component", "place_order"),
	}
}

// Handle processes the placement command and returns the placed order,
// with its store-assigned id and derived order number. A failure at any
// step leaves the cycle's mass unchanged and creates no order and no
// notification.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	placingClinic, err := uow.ClinicRepository().Get(ctx, cmd.ClinicID())
	if err != nil {
		return nil, err
	}

	owningReactor, err := uow.ReactorRepository().GetByName(ctx, cmd.ReactorName())
	if err != nil {
		return nil, err
	}

	cycleRepo := uow.ReactorCycleRepository()
	cycle, err := cycleRepo.GetForUpdate(ctx, cmd.CycleID())
	if err != nil {
		return nil, err
	}

	if cycle.ReactorID() != owningReactor.ID() {
		return nil, ErrCycleReactorMismatch
	}

	placed, err := order.NewOrder(
		placingClinic.ID(),
		owningReactor.ID(),
		cycle.ID(),
		cmd.ElbowCount(),
		cmd.DosagePerElbow(),
		cmd.InjectionDate(),
		cmd.Notes(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = cycle.Allocate(cmd.InjectionDate(), placed.TotalDosage()); err != nil {
		return nil, err
	}

	if err = cycleRepo.Update(ctx, cycle); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.emit(ctx, placed, placingClinic.Email())
	return placed, nil
}

// emit publishes the placement notification and email request after the
// transaction has committed. Failures are logged and swallowed; delivery
// is best-effort and must never undo a committed placement.
func (h PlaceOrderCommandHandler) emit(ctx context.Context, placed *order.Order, recipient string) {
	occurredAt := placed.PlacedAt()

	if err := h.eventSink.PublishStatusNotification(ctx, ports.StatusNotification{
		OrderID:     placed.ID(),
		OrderNumber: placed.Number(),
		Status:      placed.Status().String(),
		OccurredAt:  occurredAt,
	}); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish placement notification",
			"order", placed.Number(), "error", err)
	}

	if err := h.eventSink.RequestStatusEmail(ctx, ports.StatusEmail{
		OrderNumber:    placed.Number(),
		Status:         placed.Status().String(),
		RecipientEmail: recipient,
		OccurredAt:     occurredAt,
	}); err != nil {
		h.logger.ErrorContext(ctx, "Failed to request placement email",
			"order", placed.Number(), "error", err)
	}
}
