package ports

import (
	"context"

	"radiopharm/internal/core/domain/model/order"
)

// OrderRepository defines persistence operations for the Order aggregate.
// Orders are never physically deleted.
type OrderRepository interface {
	// Add inserts a new order and assigns its store identity to the
	// aggregate, so the derived order number is available after the call.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetBatch retrieves the orders with the given ids. Missing ids are
	// simply absent from the result; callers decide whether that is an
	// error.
	GetBatch(ctx context.Context, ids []int64) ([]*order.Order, error)
}
