// Package order provides domain entities and business logic for
// clinical dose orders. It implements the Order aggregate root with
// lifecycle management and the status state machine.
//
// The package includes:
//   - Order: the aggregate root holding clinic/reactor/cycle references,
//     the immutable dosage computation, and per-milestone timestamps
//   - Status: the closed ordinal state machine enforcing legal
//     transitions
//
// Key business rules:
//   - total dosage is computed once at placement and never changes
//   - status ordinals only increase; the single exception is the jump
//     to cancelled, which is allowed from any non-delivered state
//   - delivered and cancelled are terminal
//   - milestone timestamps are backfilled on skipped transitions so the
//     audit trail stays complete and monotonic
package order
