// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// entity locking where state is contended, transaction management, and
// persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest composition that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BatchRepoFactory provides access to the batch repository within a
	// transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// DriverRepoFactory provides access to the driver repository within a
	// transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within
	// a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a
	// transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// LedgerRepoFactory provides access to the cash ledger repository within
	// a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within
	// a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BatchUoW manages transactions for batch building, which touches orders
	// and batches.
	BatchUoW interface {
		TxManager
		OrderRepoFactory
		BatchRepoFactory
		TrackingRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances.
	BatchUoWFactory interface {
		Create() BatchUoW
	}

	// DispatchUoW manages transactions that coordinate orders, batches,
	// drivers and delivery records.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		BatchRepoFactory
		DriverRepoFactory
		DeliveryRepoFactory
		TrackingRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// DeliveryUoW manages transactions for the handover flow, which can
	// touch every aggregate: order, batch, driver, delivery, payment and the
	// cash ledger.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		BatchRepoFactory
		DriverRepoFactory
		DeliveryRepoFactory
		PaymentRepoFactory
		LedgerRepoFactory
		TrackingRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// PaymentUoW manages transactions for payment recording and refunds.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
		LedgerRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// SettlementUoW manages transactions for cash settlements.
	SettlementUoW interface {
		TxManager
		LedgerRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
