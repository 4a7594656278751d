package order

import (
	"errors"
	"fmt"
	"time"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an
	// order that already carries a persistent identity.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order is the aggregate root for a clinical dose order. It references
// the clinic that placed it and the reactor cycle the dose was
// allocated from, and it owns the status state machine with its
// per-milestone timestamps.
//
// Invariants:
//   - total dosage = elbow count × dosage per elbow, computed once at
//     placement and immutable thereafter
//   - every milestone at or before the current status's ordinal carries
//     a timestamp; each timestamp is set at most once and the sequence
//     is monotonically non-decreasing
//   - cancelled_at is set iff the order is cancelled
//   - orders are never physically deleted
type Order struct {
	id int64

	clinicID  int64
	reactorID int64
	cycleID   int64

	elbowCount     int
	dosagePerElbow kernel.Dosage
	totalDosage    kernel.Dosage

	injectionDate time.Time
	notes         string

	status           Status
	placedAt         time.Time
	confirmedAt      *time.Time
	shippedAt        *time.Time
	outForDeliveryAt *time.Time
	deliveredAt      *time.Time
	cancelledAt      *time.Time

	isConstructed bool
}

// NewOrder creates an order in pending status with placedAt as its first
// milestone. The total dosage is computed here, once, from the elbow
// count and per-elbow dosage; the id is assigned by the repository on
// first persistence and the display order number derives from it.
func NewOrder(
	clinicID, reactorID, cycleID int64,
	elbowCount int,
	dosagePerElbow kernel.Dosage,
	injectionDate time.Time,
	notes string,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		status:        Pending,
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setClinicID(clinicID),
		o.setReactorID(reactorID),
		o.setCycleID(cycleID),
		o.setDosage(elbowCount, dosagePerElbow),
		o.setInjectionDate(injectionDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// milestone timestamps. The stored total dosage is trusted as written;
// it was computed at placement and is immutable.
func RestoreOrder(
	id int64,
	clinicID, reactorID, cycleID int64,
	elbowCount int,
	dosagePerElbow, totalDosage kernel.Dosage,
	injectionDate time.Time,
	notes string,
	status Status,
	placedAt time.Time,
	confirmedAt, shippedAt, outForDeliveryAt, deliveredAt, cancelledAt *time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := totalDosage.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(clinicID, reactorID, cycleID, elbowCount, dosagePerElbow,
		injectionDate, notes, placedAt)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.totalDosage = totalDosage
	o.status = status
	o.confirmedAt = confirmedAt
	o.shippedAt = shippedAt
	o.outForDeliveryAt = outForDeliveryAt
	o.deliveredAt = deliveredAt
	o.cancelledAt = cancelledAt
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's persistent identity, or 0 before first persistence.
func (o *Order) ID() int64 {
	return o.id
}

// Number returns the display order number derived from the id,
// zero-padded to six digits. Empty before the id is assigned.
func (o *Order) Number() string {
	if o.id == 0 {
		return ""
	}
	return fmt.Sprintf("ORD%06d", o.id)
}

// ClinicID returns the placing clinic's identity.
func (o *Order) ClinicID() int64 {
	return o.clinicID
}

// ReactorID returns the identity of the reactor the dose is drawn from.
func (o *Order) ReactorID() int64 {
	return o.reactorID
}

// CycleID returns the identity of the reactor cycle the dose was
// allocated against.
func (o *Order) CycleID() int64 {
	return o.cycleID
}

// ElbowCount returns the number of dosing units ordered.
func (o *Order) ElbowCount() int {
	return o.elbowCount
}

// DosagePerElbow returns the per-unit dosage.
func (o *Order) DosagePerElbow() kernel.Dosage {
	return o.dosagePerElbow
}

// TotalDosage returns the dosage debited from the cycle at placement.
func (o *Order) TotalDosage() kernel.Dosage {
	return o.totalDosage
}

// InjectionDate returns the clinical date the dose is reserved for.
func (o *Order) InjectionDate() time.Time {
	return o.injectionDate
}

// Notes returns the free-form clinical notes captured at placement.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the placement milestone timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// ConfirmedAt returns the confirmation milestone, nil if not reached.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// ShippedAt returns the shipment milestone, nil if not reached.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// OutForDeliveryAt returns the out-for-delivery milestone, nil if not reached.
func (o *Order) OutForDeliveryAt() *time.Time {
	return o.outForDeliveryAt
}

// DeliveredAt returns the delivery milestone, nil if not reached.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns the cancellation timestamp, nil unless cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// AssignID sets the store-assigned identity. It may be called once,
// by the repository, after the initial insert.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	o.id = id
	return nil
}

// ValidateTransition checks whether ChangeStatus(next) would be legal
// without applying it. Used by the bulk handler to validate a whole
// batch before touching any order.
func (o *Order) ValidateTransition(next Status) error {
	return o.status.ValidateTransition(next)
}

// ChangeStatus applies a status transition and its timestamp bookkeeping.
//
// A move to cancelled sets cancelled_at and leaves the forward
// milestones untouched. A forward move walks the milestones in order
// and backfills every unset one at or before the new status with now,
// so a jump from pending straight to shipped records confirmed_at and
// shipped_at together; a milestone that is already set is never
// overwritten.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	o.status = next

	if next == Cancelled {
		o.cancelledAt = &now
		return nil
	}

	if next.Ordinal() >= Confirmed.Ordinal() && o.confirmedAt == nil {
		o.confirmedAt = &now
	}
	if next.Ordinal() >= Shipped.Ordinal() && o.shippedAt == nil {
		o.shippedAt = &now
	}
	if next.Ordinal() >= OutForDelivery.Ordinal() && o.outForDeliveryAt == nil {
		o.outForDeliveryAt = &now
	}
	if next.Ordinal() >= Delivered.Ordinal() && o.deliveredAt == nil {
		o.deliveredAt = &now
	}

	return nil
}

func (o *Order) setClinicID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("clinic id",
			fmt.Errorf("%d is not a valid clinic reference", id))
	}
	o.clinicID = id
	return nil
}

func (o *Order) setReactorID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("reactor id",
			fmt.Errorf("%d is not a valid reactor reference", id))
	}
	o.reactorID = id
	return nil
}

func (o *Order) setCycleID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("reactor cycle id",
			fmt.Errorf("%d is not a valid reactor cycle reference", id))
	}
	o.cycleID = id
	return nil
}

func (o *Order) setDosage(elbowCount int, dosagePerElbow kernel.Dosage) error {
	if err := dosagePerElbow.Validate(); err != nil {
		return err
	}
	if !dosagePerElbow.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("dosage per elbow",
			fmt.Errorf("%s is not greater than 0", dosagePerElbow))
	}

	total, err := dosagePerElbow.MulUnits(elbowCount)
	if err != nil {
		return err
	}

	o.elbowCount = elbowCount
	o.dosagePerElbow = dosagePerElbow
	o.totalDosage = total
	return nil
}

func (o *Order) setInjectionDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("injection date")
	}
	o.injectionDate = kernel.DateOnly(date)
	return nil
}
