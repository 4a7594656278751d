package commands

import (
	"errors"

	"radiopharm/internal/pkg/errs"
	"radiopharm/internal/pkg/guard"
)

var ErrRemoveReactorCycleCommandIsNotConstructed = errors.New(
	"RemoveReactorCycleCommand must be created via NewRemoveReactorCycleCommand constructor",
)

// RemoveReactorCycleCommand represents a request to retire a reactor
// cycle from the catalogue. Removal is soft: existing orders keep their
// cycle reference, but no new allocation can target the cycle.
type RemoveReactorCycleCommand struct { //nolint:recvcheck //using for validation
	cycleID int64

	guard guard.ConstructorGuard
}

// NewRemoveReactorCycleCommand creates a cycle removal command.
func NewRemoveReactorCycleCommand(cycleID int64) (RemoveReactorCycleCommand, error) {
	cmd := RemoveReactorCycleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCycleID(cycleID); err != nil {
		return RemoveReactorCycleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveReactorCycleCommand) Validate() error {
	return c.guard.Validate(ErrRemoveReactorCycleCommandIsNotConstructed)
}

// CycleID returns the identity of the cycle to remove.
func (c RemoveReactorCycleCommand) CycleID() int64 {
	return c.cycleID
}

func (c *RemoveReactorCycleCommand) setCycleID(cycleID int64) error {
	if cycleID <= 0 {
		return errs.NewValueIsInvalidError("cycle id")
	}
	c.cycleID = cycleID
	return nil
}
