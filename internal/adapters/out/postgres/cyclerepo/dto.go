// Package cyclerepo provides data transfer objects and mapping functions
// for reactor cycle persistence. Cycles are the contended aggregate of
// the system: placement debits their mass under a row lock, and the
// archival sweep rewrites their derived archive state.
package cyclerepo

import (
	"time"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/core/domain/model/reactorcycle"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReactorCycleDTO represents the database structure for persisting
// reactor cycle aggregates. DeletedAt implements the soft delete:
// removed cycles stay referenced by their orders but are invisible to
// every repository read.
type ReactorCycleDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	Name           string          `gorm:"uniqueIndex"`
	ReactorID      int64           `gorm:"index"`
	Mass           decimal.Decimal `gorm:"type:decimal(20,4)"`
	StartDate      time.Time
	ExpirationDate time.Time
	IsEnabled      bool
	IsArchived     bool `gorm:"index"`
	ArchivedStatus string
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for reactor cycle entities.
func (ReactorCycleDTO) TableName() string {
	return "reactor_cycles"
}

// fromDomain converts a reactor cycle domain aggregate to its database
// representation.
func fromDomain(aggregate *reactorcycle.ReactorCycle) ReactorCycleDTO {
	return ReactorCycleDTO{
		ID:             aggregate.ID(),
		Name:           aggregate.Name(),
		ReactorID:      aggregate.ReactorID(),
		Mass:           aggregate.Mass().Decimal(),
		StartDate:      aggregate.Window().Start(),
		ExpirationDate: aggregate.Window().End(),
		IsEnabled:      aggregate.IsEnabled(),
		IsArchived:     aggregate.IsArchived(),
		ArchivedStatus: aggregate.ArchivedStatus().String(),
	}
}

// toDomain converts a database DTO to a reactor cycle domain aggregate.
func toDomain(dto ReactorCycleDTO) (*reactorcycle.ReactorCycle, error) {
	mass, err := kernel.NewDosage(dto.Mass)
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewDateWindow(dto.StartDate, dto.ExpirationDate)
	if err != nil {
		return nil, err
	}

	archivedStatus, err := reactorcycle.ArchiveStatusFromString(dto.ArchivedStatus)
	if err != nil {
		return nil, err
	}

	return reactorcycle.RestoreReactorCycle(
		dto.ID,
		dto.Name,
		dto.ReactorID,
		mass,
		window,
		dto.IsEnabled,
		dto.IsArchived,
		archivedStatus,
	)
}
