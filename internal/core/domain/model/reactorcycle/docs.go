// Package reactorcycle provides the ReactorCycle aggregate: a
// time-boxed production batch with a finite, depletable capacity.
//
// The package includes:
//   - ReactorCycle: the aggregate root owning the capacity ledger —
//     remaining mass, allocation window, enable flag, and the derived
//     archive classification
//   - ArchiveStatus: the closed set of archive reasons (Expired, Disabled)
//
// Key business rules:
//   - mass is non-negative at all times; allocations that would overdraw
//     it are rejected with a descriptive conflict, never applied partially
//   - availability requires the cycle to be enabled, unarchived, inside
//     its inclusive date window, and to hold at least the requested mass
//   - archive state is derived from (enable flag, expiration date, today)
//     and is maintained only by the archival classifier
package reactorcycle
