package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"
)

// MarkDeliveredCommandHandler completes prepaid handoffs. Collect-on-delivery
// orders must go through code verification instead.
type MarkDeliveredCommandHandler struct {
	uowFactory DispatchUoWFactory
	locks      Locker
}

// NewMarkDeliveredCommandHandler creates a handler for prepaid handoffs.
func NewMarkDeliveredCommandHandler(uowFactory DispatchUoWFactory, locks Locker) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle delivers a prepaid in-transit order and settles the batch when it
// was the last open one.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	orderAggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !orderAggregate.PaymentMethod().IsPrepaid() {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			"collect-on-delivery orders complete via code verification")
	}
	if err = orderAggregate.Deliver(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return err
	}

	now := time.Now()

	record, err := uow.DeliveryRepository().GetByOrderForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = record.CompletePrepaid(now); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Update(ctx, record); err != nil {
		return err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), cmd.OrderID(), orderAggregate.Status(),
		nil, "prepaid order handed off", now)
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
		return err
	}

	if batchID := orderAggregate.Batch(); batchID != nil {
		if err = settleBatchIfDone(ctx, uow, *batchID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
