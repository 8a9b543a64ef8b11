package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to change a pending order's
// customer, drop location or slot before it is batched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	phone        string
	address      string
	pincode      string
	lat          float64
	lng          float64
	deliverySlot string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit a pending order.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	phone string,
	address string,
	pincode string,
	lat float64,
	lng float64,
	deliverySlot string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		customerName: customerName,
		phone:        phone,
		address:      address,
		pincode:      pincode,
		lat:          lat,
		lng:          lng,
		deliverySlot: deliverySlot,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the new recipient name.
func (c UpdateOrderCommand) CustomerName() string { return c.customerName }

// Phone returns the new contact number.
func (c UpdateOrderCommand) Phone() string { return c.phone }

// Address returns the new drop address.
func (c UpdateOrderCommand) Address() string { return c.address }

// Pincode returns the new drop postal code.
func (c UpdateOrderCommand) Pincode() string { return c.pincode }

// Lat returns the new drop latitude.
func (c UpdateOrderCommand) Lat() float64 { return c.lat }

// Lng returns the new drop longitude.
func (c UpdateOrderCommand) Lng() float64 { return c.lng }

// DeliverySlot returns the new slot hint.
func (c UpdateOrderCommand) DeliverySlot() string { return c.deliverySlot }

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
