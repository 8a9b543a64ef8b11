package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is the aggregate root for a delivery driver. It owns availability
// and the last reported position. A driver carries at most one active batch,
// which is enforced by the availability state machine: taking a batch moves
// the driver to OnDelivery, and no further batch can be taken until the
// current one finishes.
type Driver struct {
	id            kernel.UUID
	name          string
	phone         string
	vehicleType   string
	vehicleNumber string
	status        Status
	location      kernel.GeoPoint
	lastSeenAt    time.Time

	isConstructed bool
}

// NewDriver creates an Available driver at the given position.
func NewDriver(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType string,
	vehicleNumber string,
	location kernel.GeoPoint,
	now time.Time,
) (*Driver, error) {
	d := &Driver{
		status:        Available,
		lastSeenAt:    now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicleType(vehicleType),
		d.setVehicleNumber(vehicleNumber),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType string,
	vehicleNumber string,
	status Status,
	location kernel.GeoPoint,
	lastSeenAt time.Time,
) (*Driver, error) {
	d, err := NewDriver(id, name, phone, vehicleType, vehicleNumber, location, lastSeenAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// Phone returns the driver's contact number.
func (d *Driver) Phone() string { return d.phone }

// VehicleType returns the vehicle category, for example "bike" or "van".
func (d *Driver) VehicleType() string { return d.vehicleType }

// VehicleNumber returns the vehicle registration plate.
func (d *Driver) VehicleNumber() string { return d.vehicleNumber }

// Status returns the current availability state.
func (d *Driver) Status() Status { return d.status }

// Location returns the last reported position.
func (d *Driver) Location() kernel.GeoPoint { return d.location }

// LastSeenAt returns when the position was last reported, in UTC.
func (d *Driver) LastSeenAt() time.Time { return d.lastSeenAt }

// IsAvailable reports whether the driver can take a batch.
func (d *Driver) IsAvailable() bool { return d.status == Available }

// StartDelivery moves an available driver onto a route.
func (d *Driver) StartDelivery() error {
	if d.status != Available {
		return errs.NewConflictError(errs.ReasonDriverUnavailable,
			fmt.Sprintf("driver %s is %s", d.id, d.status))
	}
	d.status = OnDelivery
	return nil
}

// FinishDelivery returns the driver to the available pool after a route.
func (d *Driver) FinishDelivery() error {
	if d.status != OnDelivery {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("driver %s is %s, not on delivery", d.id, d.status))
	}
	d.status = Available
	return nil
}

// GoOffline takes an idle driver off shift. A driver on a route must finish
// it first.
func (d *Driver) GoOffline() error {
	if d.status == OnDelivery {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("driver %s cannot go offline mid delivery", d.id))
	}
	d.status = Offline
	return nil
}

// GoOnline brings an offline driver back into the available pool.
func (d *Driver) GoOnline() error {
	if d.status == OnDelivery {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("driver %s is already on delivery", d.id))
	}
	d.status = Available
	return nil
}

// MoveTo records a position report.
func (d *Driver) MoveTo(location kernel.GeoPoint, at time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	d.lastSeenAt = at.UTC()
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicleType(vehicleType string) error {
	if strings.TrimSpace(vehicleType) == "" {
		return errs.NewValueIsRequiredError("vehicle_type")
	}
	d.vehicleType = vehicleType
	return nil
}

func (d *Driver) setVehicleNumber(vehicleNumber string) error {
	if strings.TrimSpace(vehicleNumber) == "" {
		return errs.NewValueIsRequiredError("vehicle_number")
	}
	d.vehicleNumber = vehicleNumber
	return nil
}

func (d *Driver) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}
