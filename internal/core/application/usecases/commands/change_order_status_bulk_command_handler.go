package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"radiopharm/internal/core/domain/model/order"
	"radiopharm/internal/core/ports"
	"radiopharm/internal/pkg/errs"
)

// ChangeOrderStatusBulkCommandHandler moves a batch of orders to the
// same status in a single transaction. The batch is validated in full
// before any order is mutated: one missing order or one illegal
// transition rejects the whole batch.
type ChangeOrderStatusBulkCommandHandler struct {
	uowFactory StatusUoWFactory
	eventSink  ports.EventSink
	clock      ports.Clock
	logger     *slog.Logger
}

// NewChangeOrderStatusBulkCommandHandler creates a handler for bulk
// status transitions.
func NewChangeOrderStatusBulkCommandHandler(
	uowFactory StatusUoWFactory,
	eventSink ports.EventSink,
	clock ports.Clock,
	logger *slog.Logger,
) ChangeOrderStatusBulkCommandHandler {
	return ChangeOrderStatusBulkCommandHandler{
		uowFactory: uowFactory,
		eventSink:  eventSink,
		clock:      clock,
		logger:     logger.With("component", "change_order_status_bulk"),
	}
}

// Handle processes the bulk transition and returns the updated orders.
// Every order gets the same transition timestamp. Events are emitted
// per order after the transaction commits.
func (h ChangeOrderStatusBulkCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusBulkCommand,
) ([]*order.Order, error) {
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
	targets, err := orderRepo.GetBatch(ctx, cmd.OrderIDs())
	if err != nil {
		return nil, err
	}

	if err = checkBatchComplete(cmd.OrderIDs(), targets); err != nil {
		return nil, err
	}

	if err = checkBatchTransitions(targets, cmd.Status()); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	recipients := make(map[int64]string, len(targets))
	for _, target := range targets {
		if err = target.ChangeStatus(cmd.Status(), now); err != nil {
			return nil, err
		}

		if err = orderRepo.Update(ctx, target); err != nil {
			return nil, err
		}

		if _, ok := recipients[target.ClinicID()]; !ok {
			placingClinic, clinicErr := uow.ClinicRepository().Get(ctx, target.ClinicID())
			if clinicErr != nil {
				return nil, clinicErr
			}
			recipients[target.ClinicID()] = placingClinic.Email()
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, changed := range targets {
		emitStatusChange(ctx, h.eventSink, h.logger, changed, recipients[changed.ClinicID()])
	}

	return targets, nil
}

// checkBatchComplete verifies that every requested order was loaded and
// reports the missing ids otherwise.
func checkBatchComplete(ids []int64, loaded []*order.Order) error {
	if len(loaded) == len(ids) {
		return nil
	}

	found := make(map[int64]struct{}, len(loaded))
	for _, o := range loaded {
		found[o.ID()] = struct{}{}
	}

	missing := make([]string, 0, len(ids)-len(loaded))
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, fmt.Sprintf("%d", id))
		}
	}

	return errs.NewObjectNotFoundError("order ids", strings.Join(missing, ", "))
}

// checkBatchTransitions validates the transition for every order before
// any of them is mutated, reporting all offenders at once.
func checkBatchTransitions(targets []*order.Order, next order.Status) error {
	var illegal []string
	for _, target := range targets {
		if err := target.ValidateTransition(next); err != nil {
			illegal = append(illegal, fmt.Sprintf("%d", target.ID()))
		}
	}

	if len(illegal) == 0 {
		return nil
	}

	return errs.NewConflictError(fmt.Sprintf(
		"orders %s cannot transition to %s", strings.Join(illegal, ", "), next))
}
