package clinicrepo

import (
	"context"
	"errors"

	"radiopharm/internal/core/domain/model/clinic"
	"radiopharm/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClinicRepository implements ClinicRepository using GORM.
type GormClinicRepository struct {
	db *gorm.DB
}

// NewGormClinicRepository creates a new GORM clinic repository.
func NewGormClinicRepository(db *gorm.DB) *GormClinicRepository {
	return &GormClinicRepository{db: db}
}

// Add saves a new clinic and assigns the store-generated id to the
// aggregate.
func (r *GormClinicRepository) Add(ctx context.Context, aggregate *clinic.Clinic) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Get retrieves a clinic by id.
func (r *GormClinicRepository) Get(ctx context.Context, id int64) (*clinic.Clinic, error) {
	var dto ClinicDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("clinic", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
