package kernel

import (
	"fmt"
	"time"

	"radiopharm/internal/pkg/errs"
	"radiopharm/internal/pkg/guard"
)

// ErrDateWindowIsNotConstructed indicates that a DateWindow was not created
// through the NewDateWindow constructor.
var ErrDateWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"DateWindow must be created via NewDateWindow",
)

// DateWindow is an inclusive calendar date range. Reactor cycles accept
// allocations only for injection dates inside their window.
//
// Times are normalized to midnight UTC; comparisons are by calendar
// date, so any time-of-day on the boundary dates still counts as inside
// the window.
type DateWindow struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewDateWindow creates a DateWindow from a start and end date.
// Returns an error if end precedes start. Both boundaries are inclusive.
func NewDateWindow(start, end time.Time) (DateWindow, error) {
	startDate := DateOnly(start)
	endDate := DateOnly(end)

	if endDate.Before(startDate) {
		return DateWindow{}, errs.NewValueIsInvalidErrorWithCause("date window",
			fmt.Errorf("end %s precedes start %s",
				endDate.Format(time.DateOnly), startDate.Format(time.DateOnly)))
	}

	return DateWindow{
		start: startDate,
		end:   endDate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DateWindow was created through the constructor.
func (w DateWindow) Validate() error {
	return w.guard.Validate(ErrDateWindowIsNotConstructed)
}

// Start returns the first allocatable date.
func (w DateWindow) Start() time.Time {
	return w.start
}

// End returns the last allocatable date.
func (w DateWindow) End() time.Time {
	return w.end
}

// Contains reports whether the given date falls inside the window,
// boundaries included.
func (w DateWindow) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(w.start) && !d.After(w.end)
}

// ExpiredAt reports whether the window has ended before the given day.
func (w DateWindow) ExpiredAt(today time.Time) bool {
	return w.end.Before(DateOnly(today))
}

// IsEqual compares two windows by their boundary dates.
func (w DateWindow) IsEqual(other DateWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// String implements fmt.Stringer.
func (w DateWindow) String() string {
	return fmt.Sprintf("[%s, %s]", w.start.Format(time.DateOnly), w.end.Format(time.DateOnly))
}

// DateOnly truncates a time to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
