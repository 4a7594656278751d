package queries

import (
	"context"
	"time"

	"radiopharm/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckAvailabilityQueryHandler resolves cycle availability straight
// from the database. It reads the same rows placement writes, but takes
// no lock: the answer is advisory, placement re-checks under the row
// lock before debiting.
type CheckAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewCheckAvailabilityQueryHandler creates a handler for availability queries.
func NewCheckAvailabilityQueryHandler(db *gorm.DB) CheckAvailabilityQueryHandler {
	return CheckAvailabilityQueryHandler{db: db}
}

// Handle returns the enabled, unarchived cycles of the reactor whose
// window contains the date and whose allocatable mass is positive.
// Results are sorted by cycle id.
func (h CheckAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckAvailabilityQuery,
) ([]CheckAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cycles := make([]CheckAvailabilityQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.mass + COALESCE(o.total_dosage, 0) AS available_mass,
			c.start_date,
			c.expiration_date
		FROM reactor_cycles c
		JOIN reactors r ON r.id = c.reactor_id
		LEFT JOIN orders o ON o.id = ? AND o.cycle_id = c.id
		WHERE r.name = ?
		  AND c.is_enabled
		  AND NOT c.is_archived
		  AND c.deleted_at IS NULL
		  AND c.start_date <= ?
		  AND c.expiration_date >= ?
		  AND c.mass + COALESCE(o.total_dosage, 0) > 0
		ORDER BY c.id
	`, query.ExcludeOrderID(), query.ReactorName(), query.Date(), query.Date()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            int64
			name          string
			availableMass decimal.Decimal
			start, end    time.Time
		)

		if err = rows.Scan(&id, &name, &availableMass, &start, &end); err != nil {
			return nil, err
		}

		mass, massErr := kernel.NewDosage(availableMass)
		if massErr != nil {
			return nil, massErr
		}

		window, windowErr := kernel.NewDateWindow(start, end)
		if windowErr != nil {
			return nil, windowErr
		}

		cycles = append(cycles, CheckAvailabilityQueryResponse{
			CycleID:       id,
			Name:          name,
			AvailableMass: mass,
			Window:        window,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cycles, nil
}
