package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for batch aggregates.
type BatchRepository interface {
	// Add persists a new batch aggregate to storage.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update persists changes to an existing batch aggregate.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// GetForUpdate retrieves a batch with a row lock held for the
	// remainder of the transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// GetCreatedSince retrieves batches built at or after the given time,
	// newest first.
	GetCreatedSince(ctx context.Context, since time.Time) ([]*batch.Batch, error)

	// GetActiveByDriver retrieves the driver's current non-completed batch,
	// or ErrObjectNotFound when the driver is free.
	GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*batch.Batch, error)
}
