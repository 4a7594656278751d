// Package guard provides the ConstructorGuard pattern used by domain
// objects and commands to ensure they are only created through their
// designated constructor functions.
//
// A zero-value struct embedding a ConstructorGuard fails Validate, which
// lets repositories and handlers detect objects that bypassed
// construction-time validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embed it as a private field and set it with NewConstructorGuard inside
// the constructor; the zero value fails Validate.
//
// Example:
//
//	type Dosage struct {
//	    value decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDosage(v decimal.Decimal) (Dosage, error) {
//	    ...
//	    return Dosage{value: v, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
