package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes pending orders. Anything past pending is
// part of dispatch history and must be cancelled instead.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      Locker
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, locks Locker) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle deletes the order if it is still pending.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if aggregate.Status() != order.Pending {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("cannot delete order in %s status", aggregate.Status()))
	}

	if err = uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
