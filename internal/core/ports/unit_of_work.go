package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or command so
// concurrent operations never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// commit; it is a no-op once the transaction finished.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// BatchRepository returns a BatchRepository bound to the current
	// transaction.
	BatchRepository() BatchRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction.
	DriverRepository() DriverRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current
	// transaction.
	DeliveryRepository() DeliveryRepository

	// PaymentRepository returns a PaymentRepository bound to the current
	// transaction.
	PaymentRepository() PaymentRepository

	// LedgerRepository returns a LedgerRepository bound to the current
	// transaction.
	LedgerRepository() LedgerRepository

	// TrackingRepository returns a TrackingRepository bound to the current
	// transaction.
	TrackingRepository() TrackingRepository
}
