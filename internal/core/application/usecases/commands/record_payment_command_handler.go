package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/payment"
)

// RecordPaymentCommandHandler records payments against orders. A UPI payment
// with a gateway reference is captured immediately; cash stays pending until
// the door handover confirms collection.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle creates the payment, completing it straight away for referenced UPI
// transfers.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	// Order must exist; a payment against an unknown order is a 404.
	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	aggregate, err := payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), cmd.Amount(),
		cmd.Method(), cmd.Reference(), time.Now())
	if err != nil {
		return err
	}

	if cmd.Method() == order.PaymentUPI && cmd.Reference() != "" {
		if err = aggregate.Complete(); err != nil {
			return err
		}
	}

	if err = uow.PaymentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
