package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the
// transaction. Client code must explicitly manage the transaction
// lifecycle: every core operation either fully applies or fully no-ops.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// ClinicRepository returns a ClinicRepository bound to the current transaction.
	ClinicRepository() ClinicRepository

	// ReactorRepository returns a ReactorRepository bound to the current transaction.
	ReactorRepository() ReactorRepository

	// ReactorCycleRepository returns a ReactorCycleRepository bound to the
	// current transaction. Row locks taken through it are held until the
	// transaction ends.
	ReactorCycleRepository() ReactorCycleRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository
}
