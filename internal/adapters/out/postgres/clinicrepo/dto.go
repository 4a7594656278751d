// Package clinicrepo provides data transfer objects and mapping
// functions for clinic persistence.
package clinicrepo

import (
	"radiopharm/internal/core/domain/model/clinic"
)

// ClinicDTO represents the database structure for persisting clinics.
type ClinicDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"index"`
	Email string
}

// TableName specifies the database table name for clinic entities.
func (ClinicDTO) TableName() string {
	return "clinics"
}

// fromDomain converts a clinic domain aggregate to its database
// representation.
func fromDomain(aggregate *clinic.Clinic) ClinicDTO {
	return ClinicDTO{
		ID:    aggregate.ID(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
	}
}

// toDomain converts a database DTO to a clinic domain aggregate.
func toDomain(dto ClinicDTO) (*clinic.Clinic, error) {
	return clinic.RestoreClinic(dto.ID, dto.Name, dto.Email)
}
