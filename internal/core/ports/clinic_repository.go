package ports

import (
	"context"

	"radiopharm/internal/core/domain/model/clinic"
)

// ClinicRepository defines persistence operations for the Clinic aggregate.
type ClinicRepository interface {
	// Add inserts a new clinic and assigns its store identity.
	Add(ctx context.Context, aggregate *clinic.Clinic) error

	// Get retrieves a clinic by id.
	Get(ctx context.Context, id int64) (*clinic.Clinic, error)
}
