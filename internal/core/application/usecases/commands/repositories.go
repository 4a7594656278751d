// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and post-commit event emission.
package commands

import (
	"context"

	"radiopharm/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories its operation
// touches, so the interfaces compose per use case.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReactorCycleRepoFactory provides access to the reactor cycle
	// repository within a transaction.
	ReactorCycleRepoFactory interface {
		ReactorCycleRepository() ports.ReactorCycleRepository
	}

	// ClinicRepoFactory provides access to the clinic repository within a transaction.
	ClinicRepoFactory interface {
		ClinicRepository() ports.ClinicRepository
	}

	// ReactorRepoFactory provides access to the reactor repository within a transaction.
	ReactorRepoFactory interface {
		ReactorRepository() ports.ReactorRepository
	}

	// CycleUoW manages transactions for cycle-only operations.
	// Used by the archival sweep and cycle removal.
	CycleUoW interface {
		TxManager
		ReactorCycleRepoFactory
	}

	// CycleUoWFactory creates new cycle unit of work instances.
	CycleUoWFactory interface {
		Create() CycleUoW
	}

	// CycleAdminUoW manages transactions for cycle administration,
	// which also resolves the owning reactor.
	CycleAdminUoW interface {
		TxManager
		ReactorCycleRepoFactory
		ReactorRepoFactory
	}

	// CycleAdminUoWFactory creates new cycle administration unit of work instances.
	CycleAdminUoWFactory interface {
		Create() CycleAdminUoW
	}

	// StatusUoW manages transactions for order status changes. The
	// clinic repository resolves the email recipient before commit.
	StatusUoW interface {
		TxManager
		OrderRepoFactory
		ClinicRepoFactory
	}

	// StatusUoWFactory creates new status unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// PlacementUoW manages the order placement transaction, which spans
	// all four aggregates.
	PlacementUoW interface {
		TxManager
		ClinicRepoFactory
		ReactorRepoFactory
		ReactorCycleRepoFactory
		OrderRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}
)
