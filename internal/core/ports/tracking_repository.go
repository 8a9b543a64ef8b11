package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// order tracking history.
type TrackingRepository interface {
	// AddEvent appends a tracking event.
	AddEvent(ctx context.Context, event *tracking.Event) error

	// GetByOrder retrieves an order's tracking history, oldest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.Event, error)
}
