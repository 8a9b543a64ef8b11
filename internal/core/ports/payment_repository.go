package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payments.
type PaymentRepository interface {
	// Add persists a new payment.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetForUpdate retrieves a payment with a row lock held for the
	// remainder of the transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrder retrieves all payments recorded against an order, oldest
	// first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)
}
