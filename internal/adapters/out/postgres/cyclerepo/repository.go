package cyclerepo

import (
	"context"
	"errors"

	"radiopharm/internal/core/domain/model/reactorcycle"
	"radiopharm/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReactorCycleRepository implements ReactorCycleRepository using GORM.
// Requires a connection opened with TranslateError, so unique violations
// surface as gorm.ErrDuplicatedKey.
type GormReactorCycleRepository struct {
	db *gorm.DB
}

// NewGormReactorCycleRepository creates a new GORM reactor cycle repository.
func NewGormReactorCycleRepository(db *gorm.DB) *GormReactorCycleRepository {
	return &GormReactorCycleRepository{db: db}
}

// Add saves a new cycle and assigns the store-generated id to the
// aggregate. A name already in use returns a Conflict error.
func (r *GormReactorCycleRepository) Add(ctx context.Context, aggregate *reactorcycle.ReactorCycle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("reactor cycle name already in use", err)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves an existing cycle.
func (r *GormReactorCycleRepository) Update(ctx context.Context, aggregate *reactorcycle.ReactorCycle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReactorCycleDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "deleted_at").Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("reactor cycle name already in use", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reactor cycle", aggregate.ID())
	}

	return nil
}

// Get retrieves a cycle by id.
func (r *GormReactorCycleRepository) Get(ctx context.Context, id int64) (*reactorcycle.ReactorCycle, error) {
	var dto ReactorCycleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reactor cycle", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a cycle by id under a FOR UPDATE row lock. The
// lock is held until the enclosing transaction ends, serializing the
// availability check and the mass debit against concurrent placements.
func (r *GormReactorCycleRepository) GetForUpdate(ctx context.Context, id int64) (*reactorcycle.ReactorCycle, error) {
	var dto ReactorCycleDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reactor cycle", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every cycle, archived included, sorted by id.
func (r *GormReactorCycleRepository) GetAll(ctx context.Context) ([]*reactorcycle.ReactorCycle, error) {
	var dtos []ReactorCycleDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	cycles := make([]*reactorcycle.ReactorCycle, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}

	return cycles, nil
}

// Remove soft-deletes a cycle. GORM fills deleted_at; the row stays for
// the orders that reference it.
func (r *GormReactorCycleRepository) Remove(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ReactorCycleDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reactor cycle", id)
	}

	return nil
}
