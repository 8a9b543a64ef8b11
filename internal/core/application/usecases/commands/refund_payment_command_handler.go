package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/order"
)

// RefundPaymentCommandHandler returns a completed payment to the customer.
// Refunding a cash payment means the driver pays cash back out of the bag, so
// a negative adjustment lands in their ledger; the collection entry itself is
// never rewritten. The adjustment is appended under the driver's entity key,
// the same key settlement holds while it checks the balance.
type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	locks      Locker
}

// NewRefundPaymentCommandHandler creates a handler for refunds.
func NewRefundPaymentCommandHandler(uowFactory PaymentUoWFactory, locks Locker) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle flips the payment to refunded and, for cash, appends the
// compensating ledger adjustment against the collecting driver.
func (h RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.PaymentRepository().GetForUpdate(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}
	if err = aggregate.Refund(); err != nil {
		return err
	}
	if err = uow.PaymentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Method() == order.PaymentCash {
		record, err := uow.DeliveryRepository().GetByOrder(ctx, aggregate.OrderID())
		if err != nil {
			return err
		}

		release, err := h.locks.Acquire(ctx, driverLockKey(record.DriverID()))
		if err != nil {
			return err
		}
		defer release()

		adjustment, err := ledger.NewAdjustment(kernel.NewUUID(), record.DriverID(),
			aggregate.Amount().Neg(), aggregate.ID(), time.Now())
		if err != nil {
			return err
		}
		if err = uow.LedgerRepository().AddEntry(ctx, adjustment); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
