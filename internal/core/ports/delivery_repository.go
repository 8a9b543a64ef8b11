package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for per-order handover
// records.
type DeliveryRepository interface {
	// Add persists a new delivery record.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery record.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrder retrieves the delivery record for an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderForUpdate retrieves the delivery record for an order with a
	// row lock held for the remainder of the transaction.
	GetByOrderForUpdate(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetByBatch retrieves all delivery records for a batch.
	GetByBatch(ctx context.Context, batchID kernel.UUID) ([]*delivery.Delivery, error)
}
