package commands

import (
	"errors"
	"time"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/pkg/errs"
	"radiopharm/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrReactorNameIsRequired = errors.New("reactor name is required")
	ErrElbowCountIsInvalid   = errors.New("number of elbows must be greater than 0")
)

// PlaceOrderCommand represents a request to place a new dose order
// against a reactor cycle. The reactor is addressed by name, the cycle
// by id; the injection date is the clinical date the allocation is
// reserved for.
//
// Example:
//
//	perElbow, _ := kernel.DosageFromString("7.5")
//	cmd, err := NewPlaceOrderCommand(clinicID, "TRIGA-II", cycleID,
//	    injectionDate, 4, perElbow, "fasting patient")
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	clinicID       int64
	reactorName    string
	cycleID        int64
	injectionDate  time.Time
	elbowCount     int
	dosagePerElbow kernel.Dosage
	notes          string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new dose order.
// Validates references, the injection date, and the dosage inputs.
func NewPlaceOrderCommand(
	clinicID int64,
	reactorName string,
	cycleID int64,
	injectionDate time.Time,
	elbowCount int,
	dosagePerElbow kernel.Dosage,
	notes string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClinicID(clinicID),
		cmd.setReactorName(reactorName),
		cmd.setCycleID(cycleID),
		cmd.setInjectionDate(injectionDate),
		cmd.setElbowCount(elbowCount),
		cmd.setDosagePerElbow(dosagePerElbow),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ClinicID returns the placing clinic's identity.
func (c PlaceOrderCommand) ClinicID() int64 {
	return c.clinicID
}

// ReactorName returns the name of the reactor the dose is requested from.
func (c PlaceOrderCommand) ReactorName() string {
	return c.reactorName
}

// CycleID returns the identity of the reactor cycle to allocate against.
func (c PlaceOrderCommand) CycleID() int64 {
	return c.cycleID
}

// InjectionDate returns the clinical date the dose is reserved for.
func (c PlaceOrderCommand) InjectionDate() time.Time {
	return c.injectionDate
}

// ElbowCount returns the number of dosing units requested.
func (c PlaceOrderCommand) ElbowCount() int {
	return c.elbowCount
}

// DosagePerElbow returns the per-unit dosage.
func (c PlaceOrderCommand) DosagePerElbow() kernel.Dosage {
	return c.dosagePerElbow
}

// Notes returns the free-form clinical notes.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setClinicID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("clinic id")
	}
	c.clinicID = id
	return nil
}

func (c *PlaceOrderCommand) setReactorName(name string) error {
	if name == "" {
		return ErrReactorNameIsRequired
	}
	c.reactorName = name
	return nil
}

func (c *PlaceOrderCommand) setCycleID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("reactor cycle id")
	}
	c.cycleID = id
	return nil
}

func (c *PlaceOrderCommand) setInjectionDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("injection date")
	}
	c.injectionDate = date
	return nil
}

func (c *PlaceOrderCommand) setElbowCount(count int) error {
	if count <= 0 {
		return ErrElbowCountIsInvalid
	}
	c.elbowCount = count
	return nil
}

func (c *PlaceOrderCommand) setDosagePerElbow(d kernel.Dosage) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.IsPositive() {
		return errs.NewValueIsInvalidError("dosage per elbow")
	}
	c.dosagePerElbow = d
	return nil
}
