// Package reactorrepo provides data transfer objects and mapping
// functions for reactor persistence. Reactors are a small catalogue,
// addressed by id internally and by name at the ordering surface.
package reactorrepo

import (
	"radiopharm/internal/core/domain/model/reactor"
)

// ReactorDTO represents the database structure for persisting reactors.
type ReactorDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for reactor entities.
func (ReactorDTO) TableName() string {
	return "reactors"
}

// fromDomain converts a reactor domain aggregate to its database
// representation.
func fromDomain(aggregate *reactor.Reactor) ReactorDTO {
	return ReactorDTO{
		ID:   aggregate.ID(),
		Name: aggregate.Name(),
	}
}

// toDomain converts a database DTO to a reactor domain aggregate.
func toDomain(dto ReactorDTO) (*reactor.Reactor, error) {
	return reactor.RestoreReactor(dto.ID, dto.Name)
}
