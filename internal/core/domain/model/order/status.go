package order

import (
	"fmt"

	"radiopharm/internal/pkg/errs"
)

// Status represents the lifecycle state of a dose order. It implements
// a state machine over a closed, ordinal enumeration:
//
//	pending(1) → confirmed(2) → shipped(3) → out for delivery(4) → delivered(5)
//
// cancelled is a sixth, absorbing state reachable from any non-delivered
// state; delivered is terminal with no further transitions, cancellation
// included. Forward transitions may skip intermediate states but never
// repeat or revert.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at placement.
	Pending

	// Confirmed means the order has been accepted for production.
	Confirmed

	// Shipped means the dose has left the production site.
	Shipped

	// OutForDelivery means the dose is on its final leg to the clinic.
	OutForDelivery

	// Delivered is the terminal success state. No further transitions
	// are allowed, including cancellation.
	Delivered

	// Cancelled is the absorbing terminal branch, reachable from any
	// non-delivered state and not re-enterable.
	Cancelled
)

// Transition rejection reasons, surfaced as client-facing conflicts.
var (
	ErrDeliveredIsTerminal = errs.NewConflictError(
		"order is delivered and can no longer change status")
	ErrCancelledIsTerminal = errs.NewConflictError(
		"order is cancelled and can no longer change status")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Shipped:        "shipped",
		OutForDelivery: "out for delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Shipped:        "shipped",
		OutForDelivery: "out for delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses a status from its persisted or client-facing
// string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the closed set of values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value, valid or not.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Ordinal returns the position of a forward status in the delivery
// progression, pending(0) through delivered(4). Cancelled has no
// ordinal; it is handled by the explicit terminal-branch rules.
func (s Status) Ordinal() int {
	return int(s) - 1
}

// ValidateTransition decides whether an order may move from s to next.
//
// Rules, total over the closed enumeration:
//   - delivered and cancelled accept no further transitions
//   - a move to cancelled is allowed from any other valid state
//   - any other move must strictly increase the ordinal (skipping
//     intermediate states is allowed; repeats and reversions are not)
func (s Status) ValidateTransition(next Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	if s == Delivered {
		return ErrDeliveredIsTerminal
	}
	if s == Cancelled {
		return ErrCancelledIsTerminal
	}
	if next == Cancelled {
		return nil
	}

	if next.Ordinal() <= s.Ordinal() {
		return errs.NewConflictErrorWithCause("status cannot repeat or revert",
			fmt.Errorf("%s does not advance %s", next, s))
	}

	return nil
}
