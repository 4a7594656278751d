package commands

import (
	"errors"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/pkg/errs"
	"radiopharm/internal/pkg/guard"
)

var ErrCreateReactorCycleCommandIsNotConstructed = errors.New(
	"CreateReactorCycleCommand must be created via NewCreateReactorCycleCommand constructor",
)

// CreateReactorCycleCommand represents a request to register a new
// reactor cycle with its production mass and allocation window.
type CreateReactorCycleCommand struct { //nolint:recvcheck //using for validation
	name      string
	reactorID int64
	mass      kernel.Dosage
	window    kernel.DateWindow

	guard guard.ConstructorGuard
}

// NewCreateReactorCycleCommand creates a cycle creation command.
func NewCreateReactorCycleCommand(
	name string,
	reactorID int64,
	mass kernel.Dosage,
	window kernel.DateWindow,
) (CreateReactorCycleCommand, error) {
	cmd := CreateReactorCycleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setReactorID(reactorID),
		cmd.setMass(mass),
		cmd.setWindow(window),
	); err != nil {
		return CreateReactorCycleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReactorCycleCommand) Validate() error {
	return c.guard.Validate(ErrCreateReactorCycleCommandIsNotConstructed)
}

// Name returns the unique cycle name.
func (c CreateReactorCycleCommand) Name() string {
	return c.name
}

// ReactorID returns the identity of the owning reactor.
func (c CreateReactorCycleCommand) ReactorID() int64 {
	return c.reactorID
}

// Mass returns the cycle's initial production mass.
func (c CreateReactorCycleCommand) Mass() kernel.Dosage {
	return c.mass
}

// Window returns the cycle's allocation window.
func (c CreateReactorCycleCommand) Window() kernel.DateWindow {
	return c.window
}

func (c *CreateReactorCycleCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateReactorCycleCommand) setReactorID(reactorID int64) error {
	if reactorID <= 0 {
		return errs.NewValueIsInvalidError("reactor id")
	}
	c.reactorID = reactorID
	return nil
}

func (c *CreateReactorCycleCommand) setMass(mass kernel.Dosage) error {
	c.mass = mass
	return nil
}

func (c *CreateReactorCycleCommand) setWindow(window kernel.DateWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	c.window = window
	return nil
}
