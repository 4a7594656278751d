package queries

import (
	"errors"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/core/domain/model/reactorcycle"
	"radiopharm/internal/pkg/guard"
)

var (
	ErrGetArchivedCyclesQueryIsNotConstructed = errors.New(
		"GetArchivedCyclesQuery must be created via NewGetArchivedCyclesQuery constructor",
	)
)

// GetArchivedCyclesQuery retrieves every archived reactor cycle with
// its archive classification. The handler reclassifies all cycles
// first, so the listing reflects the current date even if the nightly
// sweep has not run yet.
type GetArchivedCyclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetArchivedCyclesQuery creates a query to list archived cycles.
func NewGetArchivedCyclesQuery() GetArchivedCyclesQuery {
	return GetArchivedCyclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetArchivedCyclesQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedCyclesQueryIsNotConstructed)
}

// GetArchivedCyclesQueryResponse describes one archived cycle.
type GetArchivedCyclesQueryResponse struct {
	CycleID        int64
	Name           string
	ReactorID      int64
	Mass           kernel.Dosage
	Window         kernel.DateWindow
	ArchivedStatus reactorcycle.ArchiveStatus
}
