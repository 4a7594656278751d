package queries

import (
	"errors"
	"time"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/pkg/errs"
	"radiopharm/internal/pkg/guard"
)

var (
	ErrCheckAvailabilityQueryIsNotConstructed = errors.New(
		"CheckAvailabilityQuery must be created via NewCheckAvailabilityQuery constructor",
	)
)

// CheckAvailabilityQuery lists the reactor cycles able to supply a dose
// on a given date. When excludeOrderID is set, that order's consumed
// dosage is notionally restored before the check, so an existing order
// can be re-validated against its own cycle without blocking itself.
//
// Example:
//
//	query, _ := NewCheckAvailabilityQuery("TRIGA-II", injectionDate, 0)
//	cycles, err := handler.Handle(ctx, query)
//	for _, c := range cycles {
//	    fmt.Printf("%s: %s mCi available\n", c.Name, c.AvailableMass)
//	}
type CheckAvailabilityQuery struct {
	reactorName    string
	date           time.Time
	excludeOrderID int64

	guard guard.ConstructorGuard
}

// NewCheckAvailabilityQuery creates an availability query. Pass
// excludeOrderID 0 when no order should be exempted.
func NewCheckAvailabilityQuery(reactorName string, date time.Time, excludeOrderID int64) (CheckAvailabilityQuery, error) {
	if reactorName == "" {
		return CheckAvailabilityQuery{}, errs.NewValueIsRequiredError("reactor name")
	}
	if date.IsZero() {
		return CheckAvailabilityQuery{}, errs.NewValueIsRequiredError("date")
	}
	if excludeOrderID < 0 {
		return CheckAvailabilityQuery{}, errs.NewValueIsInvalidError("exclude order id")
	}

	return CheckAvailabilityQuery{
		reactorName:    reactorName,
		date:           kernel.DateOnly(date),
		excludeOrderID: excludeOrderID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckAvailabilityQueryIsNotConstructed)
}

// ReactorName returns the name of the reactor to check.
func (q CheckAvailabilityQuery) ReactorName() string {
	return q.reactorName
}

// Date returns the clinical date the availability is checked for.
func (q CheckAvailabilityQuery) Date() time.Time {
	return q.date
}

// ExcludeOrderID returns the order whose dosage is notionally restored,
// or 0 for none.
func (q CheckAvailabilityQuery) ExcludeOrderID() int64 {
	return q.excludeOrderID
}

// CheckAvailabilityQueryResponse describes one cycle able to supply a
// dose on the requested date. AvailableMass already includes the
// notionally restored dosage of the excluded order, if any.
type CheckAvailabilityQueryResponse struct {
	CycleID       int64
	Name          string
	AvailableMass kernel.Dosage
	Window        kernel.DateWindow
}
