package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemSpec is one order line as supplied by the caller.
type ItemSpec struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
	Weight   float64
}

// CreateOrderCommand represents a request to register a new order for
// dispatch. The customer, drop coordinates and totals are validated by the
// domain constructors in the handler; the command validates identity and
// shape.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	phone         string
	address       string
	pincode       string
	lat           float64
	lng           float64
	items         []ItemSpec
	totalWeight   float64
	totalAmount   decimal.Decimal
	paymentMethod string
	deliverySlot  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	phone string,
	address string,
	pincode string,
	lat float64,
	lng float64,
	items []ItemSpec,
	totalWeight float64,
	totalAmount decimal.Decimal,
	paymentMethod string,
	deliverySlot string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName:  customerName,
		phone:         phone,
		address:       address,
		pincode:       pincode,
		lat:           lat,
		lng:           lng,
		items:         items,
		totalWeight:   totalWeight,
		totalAmount:   totalAmount,
		paymentMethod: paymentMethod,
		deliverySlot:  deliverySlot,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the recipient's name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// Phone returns the recipient's contact number.
func (c CreateOrderCommand) Phone() string { return c.phone }

// Address returns the drop address.
func (c CreateOrderCommand) Address() string { return c.address }

// Pincode returns the drop postal code.
func (c CreateOrderCommand) Pincode() string { return c.pincode }

// Lat returns the drop latitude.
func (c CreateOrderCommand) Lat() float64 { return c.lat }

// Lng returns the drop longitude.
func (c CreateOrderCommand) Lng() float64 { return c.lng }

// Items returns the order lines.
func (c CreateOrderCommand) Items() []ItemSpec { return c.items }

// TotalWeight returns the order weight in kilograms.
func (c CreateOrderCommand) TotalWeight() float64 { return c.totalWeight }

// TotalAmount returns the order value.
func (c CreateOrderCommand) TotalAmount() decimal.Decimal { return c.totalAmount }

// PaymentMethod returns the wire payment method.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }

// DeliverySlot returns the requested slot hint.
func (c CreateOrderCommand) DeliverySlot() string { return c.deliverySlot }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
