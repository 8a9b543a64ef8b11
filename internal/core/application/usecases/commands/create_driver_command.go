package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	phone         string
	vehicleType   string
	vehicleNumber string
	lat           float64
	lng           float64

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver at the given
// position.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	phone string,
	vehicleType string,
	vehicleNumber string,
	lat float64,
	lng float64,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		name:          name,
		phone:         phone,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		lat:           lat,
		lng:           lng,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID { return c.driverID }

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string { return c.name }

// Phone returns the driver's contact number.
func (c CreateDriverCommand) Phone() string { return c.phone }

// VehicleType returns the vehicle category.
func (c CreateDriverCommand) VehicleType() string { return c.vehicleType }

// VehicleNumber returns the vehicle registration plate.
func (c CreateDriverCommand) VehicleNumber() string { return c.vehicleNumber }

// Lat returns the starting latitude.
func (c CreateDriverCommand) Lat() float64 { return c.lat }

// Lng returns the starting longitude.
func (c CreateDriverCommand) Lng() float64 { return c.lng }

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
