package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
)

// CancelOrderCommandHandler withdraws an order. A cancelled order stays in
// its batch's member list, so cancellation can be the event that completes
// the batch.
type CancelOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	locks      Locker
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory DispatchUoWFactory, locks Locker) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle cancels the order, records a tracking event, and settles the
// containing batch if this was its last open order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, orderLockKey(cmd.OrderID()))
	if err != nil {
		return err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), aggregate.ID(), aggregate.Status(),
		nil, "order cancelled", time.Now())
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
		return err
	}

	if batchID := aggregate.Batch(); batchID != nil {
		if err = settleBatchIfDone(ctx, uow, *batchID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
