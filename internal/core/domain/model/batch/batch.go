package batch

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrBatchIsNotConstructed is returned when a Batch instance was not created
// through NewBatch or RestoreBatch.
var ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

// Batch is the aggregate root for a capacity-bounded group of orders
// dispatched together to one driver.
//
// Invariants:
//   - current weight never exceeds the configured max weight
//   - order count never exceeds the configured max orders
//   - at most one driver reference while the batch is active
//   - order membership is append-only; cancelled orders stay recorded so
//     completion can be derived from the full member set
type Batch struct {
	id            kernel.UUID
	orderIDs      []kernel.UUID
	currentWeight float64
	maxWeight     float64
	maxOrders     int
	status        Status
	driverID      *kernel.UUID
	center        kernel.GeoPoint
	estimatedKm   float64
	createdAt     time.Time

	isConstructed bool
}

// NewBatch creates an empty Pending batch with the given capacity limits,
// cluster center and estimated route distance. Orders are added with AddOrder,
// which enforces the limits.
func NewBatch(
	id kernel.UUID,
	maxWeight float64,
	maxOrders int,
	center kernel.GeoPoint,
	estimatedKm float64,
	createdAt time.Time,
) (*Batch, error) {
	b := &Batch{
		status:        Pending,
		estimatedKm:   estimatedKm,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setMaxWeight(maxWeight),
		b.setMaxOrders(maxOrders),
		b.setCenter(center),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBatch reconstructs a Batch from persistence.
func RestoreBatch(
	id kernel.UUID,
	orderIDs []kernel.UUID,
	currentWeight float64,
	maxWeight float64,
	maxOrders int,
	status Status,
	driverID *kernel.UUID,
	center kernel.GeoPoint,
	estimatedKm float64,
	createdAt time.Time,
) (*Batch, error) {
	b, err := NewBatch(id, maxWeight, maxOrders, center, estimatedKm, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if driverID == nil && status.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("driver_id",
			fmt.Errorf("%s batch must reference a driver", status))
	}
	if len(orderIDs) > maxOrders {
		return nil, errs.NewValueIsOutOfRangeError("order count", len(orderIDs), 0, maxOrders)
	}
	if currentWeight > maxWeight {
		return nil, errs.NewValueIsOutOfRangeError("current weight", currentWeight, 0.0, maxWeight)
	}

	b.orderIDs = orderIDs
	b.currentWeight = currentWeight
	b.status = status
	b.driverID = driverID
	return b, nil
}

// Validate ensures the Batch was created through a constructor.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// IsEqual compares two batches by identity.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch identifier.
func (b *Batch) ID() kernel.UUID { return b.id }

// OrderIDs returns the member orders in insertion order.
func (b *Batch) OrderIDs() []kernel.UUID { return b.orderIDs }

// CurrentWeight returns the aggregate weight of member orders in kilograms.
func (b *Batch) CurrentWeight() float64 { return b.currentWeight }

// CurrentOrders returns the number of member orders.
func (b *Batch) CurrentOrders() int { return len(b.orderIDs) }

// MaxWeight returns the weight capacity in kilograms.
func (b *Batch) MaxWeight() float64 { return b.maxWeight }

// MaxOrders returns the order-count capacity.
func (b *Batch) MaxOrders() int { return b.maxOrders }

// Status returns the current lifecycle state.
func (b *Batch) Status() Status { return b.status }

// Driver returns the assigned driver's id, or nil.
func (b *Batch) Driver() *kernel.UUID { return b.driverID }

// Center returns the geographic center of the member orders.
func (b *Batch) Center() kernel.GeoPoint { return b.center }

// EstimatedKm returns the estimated route distance in kilometers.
func (b *Batch) EstimatedKm() float64 { return b.estimatedKm }

// CreatedAt returns the build time in UTC.
func (b *Batch) CreatedAt() time.Time { return b.createdAt }

// CanFit reports whether an order of the given weight fits without violating
// either capacity limit.
func (b *Batch) CanFit(weight float64) bool {
	return len(b.orderIDs) < b.maxOrders && b.currentWeight+weight <= b.maxWeight
}

// AddOrder appends an order to a Pending batch, enforcing both capacity
// limits.
func (b *Batch) AddOrder(orderID kernel.UUID, weight float64) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if b.status != Pending {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("cannot add orders to batch in %s status", b.status))
	}
	if !b.CanFit(weight) {
		return errs.NewConflictError(errs.ReasonCapacityExceeded,
			fmt.Sprintf("order of %.2fkg does not fit batch at %.2f/%.2fkg with %d/%d orders",
				weight, b.currentWeight, b.maxWeight, len(b.orderIDs), b.maxOrders))
	}

	b.orderIDs = append(b.orderIDs, orderID)
	b.currentWeight += weight
	return nil
}

// AssignDriver binds a driver to the batch. Valid while Pending or Assigned;
// once the route is in progress or completed the binding is frozen.
func (b *Batch) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if len(b.orderIDs) == 0 {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			"cannot assign driver to an empty batch")
	}

	newStatus, err := b.status.Assign()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.driverID = &driverID
	return nil
}

// Start marks the batch route as departed.
func (b *Batch) Start() error {
	newStatus, err := b.status.Start()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Complete marks the batch finished. Call exactly when every member order has
// reached delivered or cancelled.
func (b *Batch) Complete() error {
	newStatus, err := b.status.Complete()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setMaxWeight(maxWeight float64) error {
	if maxWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max_weight",
			fmt.Errorf("%v is not greater than 0", maxWeight))
	}
	b.maxWeight = maxWeight
	return nil
}

func (b *Batch) setMaxOrders(maxOrders int) error {
	if maxOrders <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max_orders",
			fmt.Errorf("%d is not greater than 0", maxOrders))
	}
	b.maxOrders = maxOrders
	return nil
}

func (b *Batch) setCenter(center kernel.GeoPoint) error {
	if err := center.Validate(); err != nil {
		return err
	}
	b.center = center
	return nil
}
