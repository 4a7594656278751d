package services

import (
	"time"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/core/domain/model/reactorcycle"
)

// ArchivalClassifier keeps a reactor cycle's derived archive
// classification consistent with the present date and the operator
// enable flag. It is the only component that mutates the archive state.
//
// The rules are evaluated in fixed priority order against the cycle's
// state as observed at the start of the pass:
//
//  1. Un-archive: archived AND enabled AND not expired → back in circulation.
//  2. Archive as Disabled: unarchived AND disabled.
//  3. Archive as Expired: unarchived AND expired.
//
// Rule 2 outranks rule 3, so a cycle that is simultaneously disabled
// and expired classifies as Disabled. The classification is idempotent:
// re-running it against an already classified cycle changes nothing.
type ArchivalClassifier struct{}

// NewArchivalClassifier creates a classifier instance.
func NewArchivalClassifier() ArchivalClassifier {
	return ArchivalClassifier{}
}

// Classify applies the archival rules to a single cycle for the given
// day. It mutates the cycle in place and reports whether anything
// changed, so callers persist only cycles with actual updates.
func (ArchivalClassifier) Classify(cycle *reactorcycle.ReactorCycle, today time.Time) (bool, error) {
	if err := cycle.Validate(); err != nil {
		return false, err
	}

	day := kernel.DateOnly(today)
	expired := cycle.Window().ExpiredAt(day)

	if cycle.IsArchived() {
		if cycle.IsEnabled() && !expired {
			cycle.Unarchive()
			return true, nil
		}
		return false, nil
	}

	if !cycle.IsEnabled() {
		return true, cycle.MarkArchived(reactorcycle.ArchiveDisabled)
	}
	if expired {
		return true, cycle.MarkArchived(reactorcycle.ArchiveExpired)
	}

	return false, nil
}
