// Package errs provides standardized error types for the radiopharm
// order backend. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the core:
//   - ObjectNotFoundError: a referenced clinic, reactor, cycle, or order is missing
//   - ConflictError: a business rule rejected the operation (name in use,
//     reactor/cycle mismatch, insufficient capacity, illegal status transition)
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails construction-time validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// Anything not expressible in this taxonomy (store failures, exhausted
// transaction retries) propagates unwrapped and is treated as unexpected
// by the callers.
package errs
