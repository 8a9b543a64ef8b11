package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler edits a pending order under its entity lock.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      Locker
}

// NewUpdateOrderCommandHandler creates a handler for pending order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, locks Locker) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle replaces the order's customer, drop location and slot. Orders past
// pending are rejected with a conflict.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := order.NewCustomer(cmd.CustomerName(), cmd.Phone(), cmd.Address(), cmd.Pincode())
	if err != nil {
		return err
	}
	location, err := kernel.NewGeoPoint(cmd.Lat(), cmd.Lng())
	if err != nil {
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

	if err = aggregate.UpdateDetails(customer, location, cmd.DeliverySlot()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
