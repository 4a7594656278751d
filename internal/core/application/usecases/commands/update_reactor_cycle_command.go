package commands

import (
	"errors"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/pkg/errs"
	"radiopharm/internal/pkg/guard"
)

var ErrUpdateReactorCycleCommandIsNotConstructed = errors.New(
	"UpdateReactorCycleCommand must be created via NewUpdateReactorCycleCommand constructor",
)

// UpdateReactorCycleCommand represents a request to edit a reactor
// cycle. Every field is optional; only the provided ones change. Nil
// pointers mean "leave as is".
type UpdateReactorCycleCommand struct { //nolint:recvcheck //using for validation
	cycleID   int64
	name      *string
	reactorID *int64
	mass      *kernel.Dosage
	window    *kernel.DateWindow
	isEnabled *bool

	guard guard.ConstructorGuard
}

// NewUpdateReactorCycleCommand creates a cycle update command. At least
// one field must be provided.
func NewUpdateReactorCycleCommand(
	cycleID int64,
	name *string,
	reactorID *int64,
	mass *kernel.Dosage,
	window *kernel.DateWindow,
	isEnabled *bool,
) (UpdateReactorCycleCommand, error) {
	cmd := UpdateReactorCycleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCycleID(cycleID),
		cmd.setFields(name, reactorID, mass, window, isEnabled),
	); err != nil {
		return UpdateReactorCycleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReactorCycleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReactorCycleCommandIsNotConstructed)
}

// CycleID returns the identity of the cycle to edit.
func (c UpdateReactorCycleCommand) CycleID() int64 {
	return c.cycleID
}

// Name returns the new cycle name, or nil when the name is unchanged.
func (c UpdateReactorCycleCommand) Name() *string {
	return c.name
}

// ReactorID returns the new owning reactor, or nil when unchanged.
func (c UpdateReactorCycleCommand) ReactorID() *int64 {
	return c.reactorID
}

// Mass returns the new remaining mass, or nil when unchanged.
func (c UpdateReactorCycleCommand) Mass() *kernel.Dosage {
	return c.mass
}

// Window returns the new allocation window, or nil when unchanged.
func (c UpdateReactorCycleCommand) Window() *kernel.DateWindow {
	return c.window
}

// IsEnabled returns the new enable flag, or nil when unchanged.
func (c UpdateReactorCycleCommand) IsEnabled() *bool {
	return c.isEnabled
}

func (c *UpdateReactorCycleCommand) setCycleID(cycleID int64) error {
	if cycleID <= 0 {
		return errs.NewValueIsInvalidError("cycle id")
	}
	c.cycleID = cycleID
	return nil
}

func (c *UpdateReactorCycleCommand) setFields(
	name *string,
	reactorID *int64,
	mass *kernel.Dosage,
	window *kernel.DateWindow,
	isEnabled *bool,
) error {
	if name == nil && reactorID == nil && mass == nil && window == nil && isEnabled == nil {
		return errs.NewValueIsRequiredError("at least one field to update")
	}

	if name != nil && *name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if reactorID != nil && *reactorID <= 0 {
		return errs.NewValueIsInvalidError("reactor id")
	}
	if window != nil {
		if err := window.Validate(); err != nil {
			return err
		}
	}

	c.name = name
	c.reactorID = reactorID
	c.mass = mass
	c.window = window
	c.isEnabled = isEnabled
	return nil
}
