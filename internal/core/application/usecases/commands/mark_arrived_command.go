package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrMarkArrivedCommandIsNotConstructed = errors.New(
	"MarkArrivedCommand must be created via NewMarkArrivedCommand constructor",
)

// MarkArrivedCommand represents a driver reporting arrival at an order's
// door. Coordinates are optional; when present they update the driver's last
// known position.
type MarkArrivedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lat     *float64
	lng     *float64

	guard guard.ConstructorGuard
}

// NewMarkArrivedCommand creates a command to report arrival. lat and lng must
// be both set or both nil.
func NewMarkArrivedCommand(orderID kernel.UUID, lat, lng *float64) (MarkArrivedCommand, error) {
	cmd := MarkArrivedCommand{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}

	if (lat == nil) != (lng == nil) {
		return MarkArrivedCommand{}, errs.NewValueIsInvalidError("location")
	}
	if err := cmd.setOrderID(orderID); err != nil {
		return MarkArrivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivedCommandIsNotConstructed)
}

// OrderID returns the order the driver arrived at.
func (c MarkArrivedCommand) OrderID() kernel.UUID { return c.orderID }

// Location returns the reported coordinates, or false when none were sent.
func (c MarkArrivedCommand) Location() (lat, lng float64, ok bool) {
	if c.lat == nil {
		return 0, 0, false
	}
	return *c.lat, *c.lng, true
}

func (c *MarkArrivedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
