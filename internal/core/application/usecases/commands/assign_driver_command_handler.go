package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AssignDriverCommandHandler hands a batch to an available driver. It locks
// the driver before the batch, mirrored by every other multi-lock handler, so
// two assignments can never deadlock each other.
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
	locks      Locker
}

// NewAssignDriverCommandHandler creates a handler for batch assignment.
func NewAssignDriverCommandHandler(uowFactory DispatchUoWFactory, locks Locker) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle assigns the driver: batch to assigned, member orders to assigned,
// driver to on_delivery, one delivery record per order. Re-pointing a not yet
// departed batch frees the previous driver and re-targets the existing
// delivery records.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	releaseDriver, err := h.locks.Acquire(ctx, driverLockKey(cmd.DriverID()))
	if err != nil {
		return err
	}
	defer releaseDriver()

	releaseBatch, err := h.locks.Acquire(ctx, batchLockKey(cmd.BatchID()))
	if err != nil {
		return err
	}
	defer releaseBatch()

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
	driverAggregate, err := uow.DriverRepository().GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	previousDriverID := batchAggregate.Driver()

	if err = driverAggregate.StartDelivery(); err != nil {
		return err
	}
	// The batch rows, not the driver status, are the ground truth for
	// exclusivity; recheck them before taking the driver.
	if err = h.ensureDriverUnoccupied(ctx, uow, cmd); err != nil {
		return err
	}
	if err = batchAggregate.AssignDriver(cmd.DriverID()); err != nil {
		return err
	}

	if err = uow.BatchRepository().Update(ctx, batchAggregate); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
		return err
	}

	if previousDriverID != nil && !previousDriverID.IsEqual(cmd.DriverID()) {
		if err = h.releasePreviousDriver(ctx, uow, *previousDriverID); err != nil {
			return err
		}
	}

	if err = h.assignOrders(ctx, uow, cmd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureDriverUnoccupied rejects the assignment when another non-completed
// batch already names this driver, even if the driver row reads available.
func (h AssignDriverCommandHandler) ensureDriverUnoccupied(
	ctx context.Context,
	uow DispatchUoW,
	cmd AssignDriverCommand,
) error {
	active, err := uow.BatchRepository().GetActiveByDriver(ctx, cmd.DriverID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if active.ID().IsEqual(cmd.BatchID()) {
		return nil
	}
	return errs.NewConflictError(errs.ReasonDriverUnavailable,
		"driver "+cmd.DriverID().String()+" already has an active batch")
}

// releasePreviousDriver frees the driver a re-pointed batch was taken from.
// The DB row lock serializes the mutation; the previous driver's entity key
// is deliberately not taken here to keep the driver-then-batch lock order.
func (h AssignDriverCommandHandler) releasePreviousDriver(
	ctx context.Context,
	uow DispatchUoW,
	previousDriverID kernel.UUID,
) error {
	previous, err := uow.DriverRepository().GetForUpdate(ctx, previousDriverID)
	if err != nil {
		return err
	}
	if err = previous.FinishDelivery(); err != nil {
		return err
	}
	return uow.DriverRepository().Update(ctx, previous)
}

func (h AssignDriverCommandHandler) assignOrders(
	ctx context.Context,
	uow DispatchUoW,
	cmd AssignDriverCommand,
) error {
	orders, err := uow.OrderRepository().GetByBatch(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	existing, err := uow.DeliveryRepository().GetByBatch(ctx, cmd.BatchID())
	if err != nil {
		return err
	}
	deliveriesByOrder := make(map[kernel.UUID]*delivery.Delivery, len(existing))
	for _, d := range existing {
		deliveriesByOrder[d.OrderID()] = d
	}

	now := time.Now()
	for _, o := range orders {
		if o.Status().IsTerminal() {
			continue
		}

		if err = o.Assign(cmd.DriverID()); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}

		if d, ok := deliveriesByOrder[o.ID()]; ok {
			if err = d.Reassign(cmd.DriverID()); err != nil {
				return err
			}
			if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
				return err
			}
		} else {
			amount := o.TotalAmount()
			if o.PaymentMethod().IsPrepaid() {
				amount = decimal.Zero
			}
			record, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), cmd.BatchID(),
				cmd.DriverID(), o.PaymentMethod(), amount, now)
			if err != nil {
				return err
			}
			if err = uow.DeliveryRepository().Add(ctx, record); err != nil {
				return err
			}
		}

		event, err := tracking.NewEvent(kernel.NewUUID(), o.ID(), o.Status(),
			nil, "driver assigned to delivery", now)
		if err != nil {
			return err
		}
		if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
