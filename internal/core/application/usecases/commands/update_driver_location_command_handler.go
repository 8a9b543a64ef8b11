package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// UpdateDriverLocationCommandHandler records driver position reports.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
	locks      Locker
}

// NewUpdateDriverLocationCommandHandler creates a handler for position
// reports.
func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory, locks Locker) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle stores the driver's reported coordinates and last seen time.
func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := kernel.NewGeoPoint(cmd.Lat(), cmd.Lng())
	if err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, driverLockKey(cmd.DriverID()))
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

	aggregate, err := uow.DriverRepository().GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if err = aggregate.MoveTo(location, time.Now()); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
