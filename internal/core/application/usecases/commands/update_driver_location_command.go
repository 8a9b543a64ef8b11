package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a driver position report.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	lat      float64
	lng      float64

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command to record a position
// report.
func NewUpdateDriverLocationCommand(driverID kernel.UUID, lat, lng float64) (UpdateDriverLocationCommand, error) {
	cmd := UpdateDriverLocationCommand{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// DriverID returns the reporting driver.
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID { return c.driverID }

// Lat returns the reported latitude.
func (c UpdateDriverLocationCommand) Lat() float64 { return c.lat }

// Lng returns the reported longitude.
func (c UpdateDriverLocationCommand) Lng() float64 { return c.lng }

func (c *UpdateDriverLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
