package ports

import (
	"context"

	"radiopharm/internal/core/domain/model/reactor"
)

// ReactorRepository defines persistence operations for the Reactor aggregate.
type ReactorRepository interface {
	// Add inserts a new reactor and assigns its store identity.
	Add(ctx context.Context, aggregate *reactor.Reactor) error

	// Get retrieves a reactor by id.
	Get(ctx context.Context, id int64) (*reactor.Reactor, error)

	// GetByName retrieves a reactor by its unique name. Order placement
	// resolves reactors by name.
	GetByName(ctx context.Context, name string) (*reactor.Reactor, error)
}
