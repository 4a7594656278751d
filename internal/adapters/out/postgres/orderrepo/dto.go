// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Orders are append-mostly: they are created at
// placement, updated on status transitions, and never physically deleted.
package orderrepo

import (
	"time"

	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The id is store-assigned; the human-facing order number
// is derived from it and never stored.
type OrderDTO struct {
	ID               int64 `gorm:"primaryKey;autoIncrement"`
	ClinicID         int64 `gorm:"index"`
	ReactorID        int64 `gorm:"index"`
	CycleID          int64 `gorm:"index"`
	ElbowCount       int
	DosagePerElbow   decimal.Decimal `gorm:"type:decimal(20,4)"`
	TotalDosage      decimal.Decimal `gorm:"type:decimal(20,4)"`
	InjectionDate    time.Time
	Notes            string
	Status           int `gorm:"index"`
	PlacedAt         time.Time
	ConfirmedAt      *time.Time
	ShippedAt        *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID(),
		ClinicID:         aggregate.ClinicID(),
		ReactorID:        aggregate.ReactorID(),
		CycleID:          aggregate.CycleID(),
		ElbowCount:       aggregate.ElbowCount(),
		DosagePerElbow:   aggregate.DosagePerElbow().Decimal(),
		TotalDosage:      aggregate.TotalDosage().Decimal(),
		InjectionDate:    aggregate.InjectionDate(),
		Notes:            aggregate.Notes(),
		Status:           int(aggregate.Status()),
		PlacedAt:         aggregate.PlacedAt(),
		ConfirmedAt:      aggregate.ConfirmedAt(),
		ShippedAt:        aggregate.ShippedAt(),
		OutForDeliveryAt: aggregate.OutForDeliveryAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CancelledAt:      aggregate.CancelledAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	perElbow, err := kernel.NewDosage(dto.DosagePerElbow)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewDosage(dto.TotalDosage)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.ClinicID, dto.ReactorID, dto.CycleID,
		dto.ElbowCount,
		perElbow, total,
		dto.InjectionDate,
		dto.Notes,
		order.Status(dto.Status),
		dto.PlacedAt,
		dto.ConfirmedAt, dto.ShippedAt, dto.OutForDeliveryAt, dto.DeliveredAt, dto.CancelledAt,
	)
}
