package reactorcycle

import (
	"fmt"

	"radiopharm/internal/pkg/errs"
)

// ArchiveStatus tags an archived reactor cycle with the reason it was
// taken out of circulation. It is derived state, maintained exclusively
// by the archival classifier, never set by operator input.
type ArchiveStatus int

const (
	// ArchiveNone means the cycle is in circulation and not archived.
	ArchiveNone ArchiveStatus = iota

	// ArchiveExpired means the cycle's date window has ended.
	ArchiveExpired

	// ArchiveDisabled means an operator disabled the cycle.
	// Disabled takes priority over Expired when both apply.
	ArchiveDisabled
)

func getArchiveStatusStrings() map[ArchiveStatus]string {
	return map[ArchiveStatus]string{
		ArchiveNone:     "",
		ArchiveExpired:  "Expired",
		ArchiveDisabled: "Disabled",
	}
}

// ArchiveStatusFromString parses a persisted archive status.
// The empty string maps to ArchiveNone.
func ArchiveStatusFromString(s string) (ArchiveStatus, error) {
	for status, str := range getArchiveStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ArchiveNone, errs.NewValueIsInvalidErrorWithCause("archive status",
		fmt.Errorf("%q is not a valid archive status", s))
}

// Validate checks that the ArchiveStatus is one of the closed set of values.
func (s ArchiveStatus) Validate() error {
	if _, ok := getArchiveStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("archive status",
			fmt.Errorf("%d is not a valid archive status", s))
	}
	return nil
}

// String returns the persisted representation: "Expired", "Disabled",
// or the empty string for an unarchived cycle.
func (s ArchiveStatus) String() string {
	if str, ok := getArchiveStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
