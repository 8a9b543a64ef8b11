package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer delivery. It owns the order's
// lifecycle from submission through batching, assignment and transit to the
// delivered or cancelled terminal state.
//
// Invariants:
//   - valid unique identifier, customer contact and delivery coordinate
//   - total weight is positive; total amount is non-negative
//   - status transitions are monotonic forward except cancellation
//   - batch and driver references only appear in the statuses that allow them
//   - immutable once Delivered or Cancelled
type Order struct {
	id            kernel.UUID
	customer      Customer
	location      kernel.GeoPoint
	items         []Item
	totalWeight   float64
	totalAmount   decimal.Decimal
	paymentMethod PaymentMethod
	deliverySlot  string
	status        Status
	batchID       *kernel.UUID
	driverID      *kernel.UUID
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - customer: validated contact block
//   - location: delivery coordinate
//   - items: order lines (may be empty for externally priced orders)
//   - totalWeight: package weight in kilograms, must be positive
//   - totalAmount: amount to collect or already collected, non-negative
//   - method: upi, cash or prepaid
//   - deliverySlot: optional free-form slot hint ("morning", "evening", ...)
//   - createdAt: submission time; drives deterministic batching order
func NewOrder(
	id kernel.UUID,
	customer Customer,
	location kernel.GeoPoint,
	items []Item,
	totalWeight float64,
	totalAmount decimal.Decimal,
	method PaymentMethod,
	deliverySlot string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		items:         items,
		deliverySlot:  deliverySlot,
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setLocation(location),
		o.setTotalWeight(totalWeight),
		o.setTotalAmount(totalAmount),
		o.setPaymentMethod(method),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation transition rules. The stored status and references are validated
// for mutual consistency.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	location kernel.GeoPoint,
	items []Item,
	totalWeight float64,
	totalAmount decimal.Decimal,
	method PaymentMethod,
	deliverySlot string,
	status Status,
	batchID *kernel.UUID,
	driverID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customer, location, items, totalWeight, totalAmount, method, deliverySlot, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if batchID != nil {
		if err = batchID.Validate(); err != nil {
			return nil, err
		}
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if driverID != nil && status == Pending {
		return nil, errs.NewValueIsInvalidErrorWithCause("driver_id",
			fmt.Errorf("pending order cannot reference a driver"))
	}

	o.status = status
	o.batchID = batchID
	o.driverID = driverID
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Customer returns the customer contact block.
func (o *Order) Customer() Customer { return o.customer }

// Location returns the delivery coordinate.
func (o *Order) Location() kernel.GeoPoint { return o.location }

// Items returns the order lines.
func (o *Order) Items() []Item { return o.items }

// TotalWeight returns the package weight in kilograms.
func (o *Order) TotalWeight() float64 { return o.totalWeight }

// TotalAmount returns the order amount.
func (o *Order) TotalAmount() decimal.Decimal { return o.totalAmount }

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// DeliverySlot returns the optional slot hint.
func (o *Order) DeliverySlot() string { return o.deliverySlot }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// Batch returns the id of the batch the order belongs to, or nil.
func (o *Order) Batch() *kernel.UUID { return o.batchID }

// Driver returns the id of the assigned driver, or nil.
func (o *Order) Driver() *kernel.UUID { return o.driverID }

// CreatedAt returns the submission time in UTC.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// MarkBatched records the order's inclusion in a batch and moves it from
// Pending to Batched. Only the batch builder calls this.
func (o *Order) MarkBatched(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Batch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.batchID = &batchID
	return nil
}

// Assign records the driver responsible for delivering the order. Valid from
// Batched, and from Assigned when the batch's driver is re-pointed before
// departure.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// Depart marks the order as out for delivery.
func (o *Order) Depart() error {
	newStatus, err := o.status.Depart()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered. Callers enforce the OTP gate for
// non-prepaid orders before invoking this transition.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// UpdateDetails replaces the customer, drop location and delivery slot.
// Allowed only while the order is Pending; once batched its placement inputs
// are frozen.
func (o *Order) UpdateDetails(customer Customer, location kernel.GeoPoint, deliverySlot string) error {
	if o.status != Pending {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("cannot update order in %s status", o.status))
	}
	return errors.Join(
		o.setCustomer(customer),
		o.setLocation(location),
		o.setDeliverySlot(deliverySlot),
	)
}

// Cancel withdraws the order from any non-terminal state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setDeliverySlot(deliverySlot string) error {
	o.deliverySlot = deliverySlot
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setTotalWeight(totalWeight float64) error {
	if totalWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total_weight",
			fmt.Errorf("%v is not greater than 0", totalWeight))
	}
	o.totalWeight = totalWeight
	return nil
}

func (o *Order) setTotalAmount(totalAmount decimal.Decimal) error {
	if totalAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total_amount",
			fmt.Errorf("%s is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
