package queries

import (
	"context"
	"time"

	"radiopharm/internal/core/application/usecases/commands"
	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/core/domain/model/reactorcycle"
	"radiopharm/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetArchivedCyclesQueryHandler lists archived reactor cycles. It runs
// the archival sweep synchronously before reading, so a cycle that
// expired since the last nightly pass still shows up.
type GetArchivedCyclesQueryHandler struct {
	db    *gorm.DB
	sweep commands.RunArchivalSweepCommandHandler
	clock ports.Clock
}

// NewGetArchivedCyclesQueryHandler creates a handler for the archived
// cycle listing.
func NewGetArchivedCyclesQueryHandler(
	db *gorm.DB,
	sweep commands.RunArchivalSweepCommandHandler,
	clock ports.Clock,
) GetArchivedCyclesQueryHandler {
	return GetArchivedCyclesQueryHandler{db: db, sweep: sweep, clock: clock}
}

// Handle reclassifies all cycles for today, then returns the archived
// ones sorted by cycle id.
func (h GetArchivedCyclesQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedCyclesQuery,
) ([]GetArchivedCyclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sweepCmd, err := commands.NewRunArchivalSweepCommand(h.clock.Now())
	if err != nil {
		return nil, err
	}
	if _, err = h.sweep.Handle(ctx, sweepCmd); err != nil {
		return nil, err
	}

	cycles := make([]GetArchivedCyclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			reactor_id,
			mass,
			start_date,
			expiration_date,
			archived_status
		FROM reactor_cycles
		WHERE is_archived
		  AND deleted_at IS NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, reactorID  int64
			name           string
			massValue      decimal.Decimal
			start, end     time.Time
			archivedStatus string
		)

		if err = rows.Scan(&id, &name, &reactorID, &massValue, &start, &end, &archivedStatus); err != nil {
			return nil, err
		}

		mass, massErr := kernel.NewDosage(massValue)
		if massErr != nil {
			return nil, massErr
		}

		window, windowErr := kernel.NewDateWindow(start, end)
		if windowErr != nil {
			return nil, windowErr
		}

		status, statusErr := reactorcycle.ArchiveStatusFromString(archivedStatus)
		if statusErr != nil {
			return nil, statusErr
		}

		cycles = append(cycles, GetArchivedCyclesQueryResponse{
			CycleID:        id,
			Name:           name,
			ReactorID:      reactorID,
			Mass:           mass,
			Window:         window,
			ArchivedStatus: status,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cycles, nil
}
