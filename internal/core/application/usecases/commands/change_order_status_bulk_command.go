package commands

import (
	"errors"
	"fmt"

	"radiopharm/internal/core/domain/model/order"
	"radiopharm/internal/pkg/errs"
	"radiopharm/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusBulkCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusBulkCommand must be created via NewChangeOrderStatusBulkCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// ChangeOrderStatusBulkCommand represents a request to move a batch of
// orders to the same new status. The batch is all-or-nothing: if any
// order fails validation, no order changes.
type ChangeOrderStatusBulkCommand struct { //nolint:recvcheck //using for validation
	orderIDs []int64
	status   order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusBulkCommand creates a bulk status change command.
// Requires a non-empty list of positive, de-duplicated order ids and a
// valid target status.
func NewChangeOrderStatusBulkCommand(orderIDs []int64, status order.Status) (ChangeOrderStatusBulkCommand, error) {
	cmd := ChangeOrderStatusBulkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusBulkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusBulkCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusBulkCommandIsNotConstructed)
}

// OrderIDs returns the identities of the orders to transition.
func (c ChangeOrderStatusBulkCommand) OrderIDs() []int64 {
	ids := make([]int64, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

// Status returns the target status for every order in the batch.
func (c ChangeOrderStatusBulkCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusBulkCommand) setOrderIDs(ids []int64) error {
	if len(ids) == 0 {
		return ErrOrderIDsAreRequired
	}

	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("order ids",
				fmt.Errorf("%d is not a valid order id", id))
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	c.orderIDs = unique
	return nil
}

func (c *ChangeOrderStatusBulkCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
