// Package services provides domain services that implement business
// rules spanning state no single aggregate method owns.
//
// The package includes:
//   - ArchivalClassifier: the idempotent reclassification rules that keep
//     a reactor cycle's derived archive state consistent with the present
//     date and its operator enable flag
//
// Domain services are pure: they mutate the aggregates passed to them
// and leave persistence and transaction boundaries to the application
// layer.
package services
