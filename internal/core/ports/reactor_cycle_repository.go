package ports

import (
	"context"

	"radiopharm/internal/core/domain/model/reactorcycle"
)

// ReactorCycleRepository defines persistence operations for the
// ReactorCycle aggregate. Soft-deleted cycles are invisible to every
// method here.
type ReactorCycleRepository interface {
	// Add inserts a new cycle and assigns its store identity to the
	// aggregate. A duplicate name surfaces as a Conflict error.
	Add(ctx context.Context, aggregate *reactorcycle.ReactorCycle) error

	// Update saves an existing cycle.
	Update(ctx context.Context, aggregate *reactorcycle.ReactorCycle) error

	// Get retrieves a cycle by id.
	Get(ctx context.Context, id int64) (*reactorcycle.ReactorCycle, error)

	// GetForUpdate retrieves a cycle by id holding an exclusive row lock
	// for the duration of the enclosing transaction. Order placement
	// uses it so the availability check and the mass debit are never
	// separated by a concurrent allocation.
	GetForUpdate(ctx context.Context, id int64) (*reactorcycle.ReactorCycle, error)

	// GetAll retrieves every cycle, archived included. The archival
	// sweep classifies over this set.
	GetAll(ctx context.Context) ([]*reactorcycle.ReactorCycle, error)

	// Remove soft-deletes a cycle. No further allocation is possible;
	// existing orders keep their reference.
	Remove(ctx context.Context, id int64) error
}
