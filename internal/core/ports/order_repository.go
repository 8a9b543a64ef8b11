package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order with a row lock held for the
	// remainder of the transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order from storage. Only pending orders may be
	// deleted; the use case enforces that before calling.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPending retrieves every order still waiting to be batched,
	// oldest first.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetByBatch retrieves all orders that belong to the given batch.
	GetByBatch(ctx context.Context, batchID kernel.UUID) ([]*order.Order, error)
}
