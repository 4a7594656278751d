// Package kernel provides shared value objects used across the domain
// model of the radiopharm order backend.
//
// The package includes:
//   - Dosage: a non-negative decimal quantity of allocatable activity,
//     used for reactor cycle mass and order dosages
//   - DateWindow: an inclusive calendar date range during which a
//     reactor cycle accepts allocations
//
// Value objects are immutable, compared by value, and can only be
// created through their constructor functions. The zero value of each
// type fails Validate, which lets repositories detect objects that were
// reconstructed without going through validation.
package kernel
