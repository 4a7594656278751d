package reactorrepo

import (
	"context"
	"errors"

	"radiopharm/internal/core/domain/model/reactor"
	"radiopharm/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReactorRepository implements ReactorRepository using GORM.
type GormReactorRepository struct {
	db *gorm.DB
}

// NewGormReactorRepository creates a new GORM reactor repository.
func NewGormReactorRepository(db *gorm.DB) *GormReactorRepository {
	return &GormReactorRepository{db: db}
}

// Add saves a new reactor and assigns the store-generated id to the
// aggregate. A name already in use returns a Conflict error.
func (r *GormReactorRepository) Add(ctx context.Context, aggregate *reactor.Reactor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("reactor name already in use", err)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Get retrieves a reactor by id.
func (r *GormReactorRepository) Get(ctx context.Context, id int64) (*reactor.Reactor, error) {
	var dto ReactorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reactor", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a reactor by its unique name.
func (r *GormReactorRepository) GetByName(ctx context.Context, name string) (*reactor.Reactor, error) {
	var dto ReactorDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reactor", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
