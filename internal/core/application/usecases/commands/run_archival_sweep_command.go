package commands

import (
	"errors"
	"time"

	"radiopharm/internal/pkg/errs"
	"radiopharm/internal/pkg/guard"
)

var ErrRunArchivalSweepCommandIsNotConstructed = errors.New(
	"RunArchivalSweepCommand must be created via NewRunArchivalSweepCommand constructor",
)

// RunArchivalSweepCommand represents a request to reclassify every
// reactor cycle's archive state against a reference day. The nightly
// job issues it with the current date; read paths issue it before
// listing archived cycles so the listing is never stale.
type RunArchivalSweepCommand struct { //nolint:recvcheck //using for validation
	day time.Time

	guard guard.ConstructorGuard
}

// NewRunArchivalSweepCommand creates a sweep command for the given day.
func NewRunArchivalSweepCommand(day time.Time) (RunArchivalSweepCommand, error) {
	cmd := RunArchivalSweepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDay(day); err != nil {
		return RunArchivalSweepCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RunArchivalSweepCommand) Validate() error {
	return c.guard.Validate(ErrRunArchivalSweepCommandIsNotConstructed)
}

// Day returns the reference day the sweep classifies against.
func (c RunArchivalSweepCommand) Day() time.Time {
	return c.day
}

func (c *RunArchivalSweepCommand) setDay(day time.Time) error {
	if day.IsZero() {
		return errs.NewValueIsRequiredError("day")
	}
	c.day = day
	return nil
}
