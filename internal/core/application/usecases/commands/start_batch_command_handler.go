package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
)

// StartBatchCommandHandler marks an assigned batch as departed and flips its
// open orders to in transit.
type StartBatchCommandHandler struct {
	uowFactory DispatchUoWFactory
	locks      Locker
}

// NewStartBatchCommandHandler creates a handler for batch departure.
func NewStartBatchCommandHandler(uowFactory DispatchUoWFactory, locks Locker) StartBatchCommandHandler {
	return StartBatchCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle starts the route: batch to in_progress, member orders to
// in_transit, delivery records stamped with the real departure time.
func (h StartBatchCommandHandler) Handle(ctx context.Context, cmd StartBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, batchLockKey(cmd.BatchID()))
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

	batchAggregate, err := uow.BatchRepository().GetForUpdate(ctx, cmd.BatchID())
	if err != nil {
		return err
	}
	if err = batchAggregate.Start(); err != nil {
		return err
	}
	if err = uow.BatchRepository().Update(ctx, batchAggregate); err != nil {
		return err
	}

	now := time.Now()

	orders, err := uow.OrderRepository().GetByBatch(ctx, cmd.BatchID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.Status().IsTerminal() {
			continue
		}
		if err = o.Depart(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}

		event, err := tracking.NewEvent(kernel.NewUUID(), o.ID(), o.Status(),
			nil, "out for delivery", now)
		if err != nil {
			return err
		}
		if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
			return err
		}
	}

	records, err := uow.DeliveryRepository().GetByBatch(ctx, cmd.BatchID())
	if err != nil {
		return err
	}
	for _, record := range records {
		if record.IsCompleted() {
			continue
		}
		record.MarkStarted(now)
		if err = uow.DeliveryRepository().Update(ctx, record); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
