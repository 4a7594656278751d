// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work owns one database transaction and hands
// out repositories bound to it, so a business operation either fully
// applies or fully no-ops.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, placed); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency: each UnitOfWork instance is single-use and not safe for
// concurrent goroutines; create one per operation. Row locks taken
// through ReactorCycleRepository().GetForUpdate are held until Commit
// or Rollback.
package postgres

import (
	"context"

	"radiopharm/internal/adapters/out/postgres/clinicrepo"
	"radiopharm/internal/adapters/out/postgres/cyclerepo"
	"radiopharm/internal/adapters/out/postgres/orderrepo"
	"radiopharm/internal/adapters/out/postgres/reactorrepo"
	"radiopharm/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each created instance gets isolated transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of
// work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the four
// aggregate repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which
// makes the deferred rollback-after-commit pattern safe.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// ReactorCycleRepository returns a reactor cycle repository bound to
// the current transaction if one is active.
func (uow *GormUnitOfWork) ReactorCycleRepository() ports.ReactorCycleRepository {
	return cyclerepo.NewGormReactorCycleRepository(uow.conn())
}

// ClinicRepository returns a clinic repository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) ClinicRepository() ports.ClinicRepository {
	return clinicrepo.NewGormClinicRepository(uow.conn())
}

// ReactorRepository returns a reactor repository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) ReactorRepository() ports.ReactorRepository {
	return reactorrepo.NewGormReactorRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
