package reactorcycle

import (
	"errors"
	"fmt"
	"time"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/pkg/errs"
)

var (
	// ErrReactorCycleIsNotConstructed is returned when a ReactorCycle was not
	// created through NewReactorCycle or RestoreReactorCycle.
	ErrReactorCycleIsNotConstructed = errors.New(
		"ReactorCycle must be created via NewReactorCycle or RestoreReactorCycle",
	)

	// ErrReactorCycleIDAlreadyAssigned is returned when AssignID is called on
	// a cycle that already carries a persistent identity.
	ErrReactorCycleIDAlreadyAssigned = errors.New("reactor cycle id is already assigned")
)

// Availability rejection reasons. Each is a ConflictError so callers can
// classify with errors.Is(err, errs.ErrConflict) or match the specific
// reason; the message is the human-readable rejection surfaced to clients.
var (
	ErrCycleDisabled = errs.NewConflictError("reactor cycle is disabled")
	ErrCycleArchived = errs.NewConflictError("reactor cycle is archived")
	ErrDateOutsideWindow = errs.NewConflictError(
		"injection date is outside the reactor cycle window")
	ErrInsufficientMass = errs.NewConflictError(
		"reactor cycle has insufficient remaining mass")
)

// ReactorCycle is the aggregate root for a time-boxed production batch.
// It owns the capacity ledger: the remaining allocatable mass, the
// inclusive date window during which the mass may be allocated, the
// operator enable flag, and the derived archive classification.
//
// Invariants:
//   - mass never goes negative; an allocation that would overdraw it is rejected
//   - the archive classification is only mutated through MarkArchived/Unarchive,
//     which the archival classifier drives
//   - a disabled or archived cycle accepts no allocations regardless of
//     window and mass
type ReactorCycle struct {
	id        int64
	name      string
	reactorID int64

	mass   kernel.Dosage
	window kernel.DateWindow

	isEnabled      bool
	isArchived     bool
	archivedStatus ArchiveStatus

	isConstructed bool
}

// NewReactorCycle creates a cycle for the given reactor with its full
// initial mass and allocation window. New cycles start enabled and
// unarchived; the id is assigned by the repository on first persistence.
func NewReactorCycle(
	name string,
	reactorID int64,
	mass kernel.Dosage,
	window kernel.DateWindow,
) (*ReactorCycle, error) {
	cycle := &ReactorCycle{
		isEnabled:      true,
		archivedStatus: ArchiveNone,
		isConstructed:  true,
	}

	if err := errors.Join(
		cycle.setName(name),
		cycle.setReactorID(reactorID),
		cycle.setMass(mass),
		cycle.setWindow(window),
	); err != nil {
		return nil, err
	}

	return cycle, nil
}

// RestoreReactorCycle reconstructs a cycle from persistence, including
// its derived archive classification.
func RestoreReactorCycle(
	id int64,
	name string,
	reactorID int64,
	mass kernel.Dosage,
	window kernel.DateWindow,
	isEnabled bool,
	isArchived bool,
	archivedStatus ArchiveStatus,
) (*ReactorCycle, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("reactor cycle id")
	}
	if err := archivedStatus.Validate(); err != nil {
		return nil, err
	}

	cycle, err := NewReactorCycle(name, reactorID, mass, window)
	if err != nil {
		return nil, err
	}

	cycle.id = id
	cycle.isEnabled = isEnabled
	cycle.isArchived = isArchived
	cycle.archivedStatus = archivedStatus
	return cycle, nil
}

// Validate ensures the cycle was created through a constructor.
func (c *ReactorCycle) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrReactorCycleIsNotConstructed
	}
	return nil
}

// ID returns the cycle's persistent identity, or 0 before first persistence.
func (c *ReactorCycle) ID() int64 {
	return c.id
}

// Name returns the cycle's globally unique name.
func (c *ReactorCycle) Name() string {
	return c.name
}

// ReactorID returns the owning reactor's identity.
func (c *ReactorCycle) ReactorID() int64 {
	return c.reactorID
}

// Mass returns the remaining allocatable mass.
func (c *ReactorCycle) Mass() kernel.Dosage {
	return c.mass
}

// Window returns the inclusive allocation date window.
func (c *ReactorCycle) Window() kernel.DateWindow {
	return c.window
}

// IsEnabled reports the operator enable flag.
func (c *ReactorCycle) IsEnabled() bool {
	return c.isEnabled
}

// IsArchived reports the derived archive flag.
func (c *ReactorCycle) IsArchived() bool {
	return c.isArchived
}

// ArchivedStatus returns the derived archive classification.
func (c *ReactorCycle) ArchivedStatus() ArchiveStatus {
	return c.archivedStatus
}

// AssignID sets the store-assigned identity. It may be called once,
// by the repository, after the initial insert.
func (c *ReactorCycle) AssignID(id int64) error {
	if c.id != 0 {
		return ErrReactorCycleIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("reactor cycle id")
	}

	c.id = id
	return nil
}

// CheckAvailability decides whether the cycle can satisfy the requested
// dosage on the requested date. Returns nil when it can, or the
// ConflictError naming the first failing rule: disabled, archived,
// outside the window, or insufficient mass.
func (c *ReactorCycle) CheckAvailability(date time.Time, requested kernel.Dosage) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	if !c.isEnabled {
		return ErrCycleDisabled
	}
	if c.isArchived {
		return ErrCycleArchived
	}
	if !c.window.Contains(date) {
		return ErrDateOutsideWindow
	}
	if !c.mass.GreaterOrEqual(requested) {
		return ErrInsufficientMass
	}

	return nil
}

// Allocate debits the requested dosage from the remaining mass.
// The availability check and the debit run together so a passing check
// is never separated from its debit; callers serialize concurrent
// allocations by holding the store's row lock around this call.
func (c *ReactorCycle) Allocate(date time.Time, requested kernel.Dosage) error {
	if err := c.CheckAvailability(date, requested); err != nil {
		return err
	}

	remaining, err := c.mass.Sub(requested)
	if err != nil {
		return ErrInsufficientMass
	}

	c.mass = remaining
	return nil
}

// SetMass applies a corrective edit to the remaining mass.
// Allocation is the only other path that changes mass, and it only decreases it.
func (c *ReactorCycle) SetMass(mass kernel.Dosage) error {
	return c.setMass(mass)
}

// ChangeWindow applies a corrective edit to the allocation window.
func (c *ReactorCycle) ChangeWindow(window kernel.DateWindow) error {
	return c.setWindow(window)
}

// Rename changes the cycle's unique name.
func (c *ReactorCycle) Rename(name string) error {
	return c.setName(name)
}

// ReassignReactor moves the cycle to another owning reactor.
func (c *ReactorCycle) ReassignReactor(reactorID int64) error {
	return c.setReactorID(reactorID)
}

// Enable sets the operator enable flag. The cycle only re-enters
// circulation once the archival classifier un-archives it.
func (c *ReactorCycle) Enable() {
	c.isEnabled = true
}

// Disable suspends allocation regardless of window and mass.
func (c *ReactorCycle) Disable() {
	c.isEnabled = false
}

// MarkArchived records the archive classification. Only the archival
// classifier calls this; status must name a reason, not ArchiveNone.
func (c *ReactorCycle) MarkArchived(status ArchiveStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == ArchiveNone {
		return errs.NewValueIsInvalidErrorWithCause("archive status",
			fmt.Errorf("archiving requires a reason"))
	}

	c.isArchived = true
	c.archivedStatus = status
	return nil
}

// Unarchive clears the archive classification, returning the cycle to
// circulation.
func (c *ReactorCycle) Unarchive() {
	c.isArchived = false
	c.archivedStatus = ArchiveNone
}

func (c *ReactorCycle) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("reactor cycle name")
	}
	c.name = name
	return nil
}

func (c *ReactorCycle) setReactorID(reactorID int64) error {
	if reactorID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("reactor id",
			fmt.Errorf("%d is not a valid reactor reference", reactorID))
	}
	c.reactorID = reactorID
	return nil
}

func (c *ReactorCycle) setMass(mass kernel.Dosage) error {
	if err := mass.Validate(); err != nil {
		return err
	}
	c.mass = mass
	return nil
}

func (c *ReactorCycle) setWindow(window kernel.DateWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	c.window = window
	return nil
}
