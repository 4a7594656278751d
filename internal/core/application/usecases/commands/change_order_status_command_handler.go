package commands

import (
	"context"
	"log/slog"
	"time"

	"radiopharm/internal/core/domain/model/order"
	"radiopharm/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a single-order status
// transition inside a transaction, then emits the status notification
// and email request.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, sink, clock, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Shipped)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // illegal transition; err carries the reason
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	eventSink  ports.EventSink
	clock      ports.Clock
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for single-order
// status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory StatusUoWFactory,
	eventSink ports.EventSink,
	clock ports.Clock,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		eventSink:  eventSink,
		clock:      clock,
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle processes the transition command and returns the updated order.
// The status mutation and its milestone bookkeeping commit atomically;
// a crash mid-update can never leave status and timestamps inconsistent.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = target.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	placingClinic, err := uow.ClinicRepository().Get(ctx, target.ClinicID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	emitStatusChange(ctx, h.eventSink, h.logger, target, placingClinic.Email())
	return target, nil
}

// emitStatusChange publishes one notification and one email request for
// a committed status change. Shared with the bulk handler; failures are
// logged and never propagated.
func emitStatusChange(
	ctx context.Context,
	sink ports.EventSink,
	logger *slog.Logger,
	changed *order.Order,
	recipient string,
) {
	occurredAt := statusChangeTime(changed)

	if err := sink.PublishStatusNotification(ctx, ports.StatusNotification{
		OrderID:     changed.ID(),
		OrderNumber: changed.Number(),
		Status:      changed.Status().String(),
		OccurredAt:  occurredAt,
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to publish status notification",
			"order", changed.Number(), "status", changed.Status().String(), "error", err)
	}

	if err := sink.RequestStatusEmail(ctx, ports.StatusEmail{
		OrderNumber:    changed.Number(),
		Status:         changed.Status().String(),
		RecipientEmail: recipient,
		OccurredAt:     occurredAt,
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to request status email",
			"order", changed.Number(), "status", changed.Status().String(), "error", err)
	}
}

// statusChangeTime returns the milestone timestamp matching the order's
// current status.
func statusChangeTime(o *order.Order) time.Time {
	var milestone *time.Time

	switch o.Status() {
	case order.Cancelled:
		milestone = o.CancelledAt()
	case order.Confirmed:
		milestone = o.ConfirmedAt()
	case order.Shipped:
		milestone = o.ShippedAt()
	case order.OutForDelivery:
		milestone = o.OutForDeliveryAt()
	case order.Delivered:
		milestone = o.DeliveredAt()
	}

	if milestone != nil {
		return *milestone
	}
	return o.PlacedAt()
}
