package kernel

import (
	"fmt"

	"radiopharm/internal/pkg/errs"
	"radiopharm/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDosageIsNotConstructed indicates that a Dosage was not created through
// one of the constructor functions.
var ErrDosageIsNotConstructed = errs.NewValueIsRequiredError(
	"Dosage must be created via NewDosage, DosageFromString, or ZeroDosage",
)

// Dosage is a value object representing a non-negative quantity of
// allocatable activity. It is used both for the remaining mass of a
// reactor cycle and for the per-elbow and total dosage of an order.
//
// Dosage is immutable: arithmetic methods return new values. Negative
// quantities cannot be constructed, which keeps the mass >= 0 invariant
// expressible in the type itself.
//
// Example:
//
//	mass, _ := kernel.DosageFromString("30")
//	perElbow, _ := kernel.DosageFromString("7.5")
//	total, _ := perElbow.MulUnits(4)
//	remaining, err := mass.Sub(total)
//	if err != nil {
//	    // requested more than available
//	}
type Dosage struct {
	value decimal.Decimal

	guard guard.ConstructorGuard
}

// NewDosage creates a Dosage from a decimal value.
// Returns an error if the value is negative.
func NewDosage(value decimal.Decimal) (Dosage, error) {
	if value.IsNegative() {
		return Dosage{}, errs.NewValueIsInvalidErrorWithCause("dosage",
			fmt.Errorf("%s is negative", value))
	}

	return Dosage{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// DosageFromString parses a Dosage from its decimal string representation.
func DosageFromString(s string) (Dosage, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Dosage{}, errs.NewValueIsInvalidErrorWithCause("dosage", err)
	}

	return NewDosage(value)
}

// ZeroDosage returns a valid Dosage of zero.
func ZeroDosage() Dosage {
	return Dosage{
		value: decimal.Zero,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the Dosage was created through a constructor.
func (d Dosage) Validate() error {
	return d.guard.Validate(ErrDosageIsNotConstructed)
}

// Decimal returns the underlying decimal value.
func (d Dosage) Decimal() decimal.Decimal {
	return d.value
}

// String implements fmt.Stringer.
func (d Dosage) String() string {
	return d.value.String()
}

// IsPositive reports whether the dosage is strictly greater than zero.
func (d Dosage) IsPositive() bool {
	return d.value.IsPositive()
}

// IsEqual compares two dosages by numeric value.
func (d Dosage) IsEqual(other Dosage) bool {
	return d.value.Equal(other.value)
}

// GreaterOrEqual reports whether d >= other.
func (d Dosage) GreaterOrEqual(other Dosage) bool {
	return d.value.GreaterThanOrEqual(other.value)
}

// Add returns the sum of two dosages.
func (d Dosage) Add(other Dosage) Dosage {
	return Dosage{
		value: d.value.Add(other.value),
		guard: guard.NewConstructorGuard(),
	}
}

// Sub returns d - other. Returns an error if the result would be
// negative, so a debit can never drive a quantity below zero.
func (d Dosage) Sub(other Dosage) (Dosage, error) {
	result := d.value.Sub(other.value)
	if result.IsNegative() {
		return Dosage{}, errs.NewValueIsInvalidErrorWithCause("dosage",
			fmt.Errorf("subtracting %s from %s is negative", other.value, d.value))
	}

	return Dosage{
		value: result,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MulUnits multiplies the dosage by a positive unit count.
// Used to compute an order's total dosage from its per-elbow dosage.
func (d Dosage) MulUnits(units int) (Dosage, error) {
	if units <= 0 {
		return Dosage{}, errs.NewValueIsInvalidErrorWithCause("units",
			fmt.Errorf("%d is not greater than 0", units))
	}

	return Dosage{
		value: d.value.Mul(decimal.NewFromInt(int64(units))),
		guard: guard.NewConstructorGuard(),
	}, nil
}
