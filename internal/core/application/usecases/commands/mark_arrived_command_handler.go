package commands

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"
)

// MarkArrivedCommandHandler records a driver at the door and issues the
// handover confirmation code.
type MarkArrivedCommandHandler struct {
	uowFactory DispatchUoWFactory
	locks      Locker
}

// NewMarkArrivedCommandHandler creates a handler for arrival reports.
func NewMarkArrivedCommandHandler(uowFactory DispatchUoWFactory, locks Locker) MarkArrivedCommandHandler {
	return MarkArrivedCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle issues a fresh confirmation code for an in-transit order and returns
// it. Repeat arrivals re-issue; the previous code stops working.
func (h MarkArrivedCommandHandler) Handle(ctx context.Context, cmd MarkArrivedCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	release, err := h.locks.Acquire(ctx, orderLockKey(cmd.OrderID()))
	if err != nil {
		return "", err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}
	if orderAggregate.Status() != order.InTransit {
		return "", errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("order is %s, arrival requires in_transit", orderAggregate.Status()))
	}

	record, err := uow.DeliveryRepository().GetByOrderForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	now := time.Now()
	code, err := record.Arrive(now)
	if err != nil {
		return "", err
	}
	if err = uow.DeliveryRepository().Update(ctx, record); err != nil {
		return "", err
	}

	var eventLocation *kernel.GeoPoint
	if lat, lng, ok := cmd.Location(); ok {
		point, err := kernel.NewGeoPoint(lat, lng)
		if err != nil {
			return "", err
		}
		eventLocation = &point

		driverAggregate, err := uow.DriverRepository().GetForUpdate(ctx, record.DriverID())
		if err != nil {
			return "", err
		}
		if err = driverAggregate.MoveTo(point, now); err != nil {
			return "", err
		}
		if err = uow.DriverRepository().Update(ctx, driverAggregate); err != nil {
			return "", err
		}
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), cmd.OrderID(), orderAggregate.Status(),
		eventLocation, "driver arrived at the door", now)
	if err != nil {
		return "", err
	}
	if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return code, nil
}
