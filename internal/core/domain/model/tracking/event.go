package tracking

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ErrEventIsNotConstructed is returned when an Event was not created through
// NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is one append-only line in an order's tracking history: the status the
// order entered, an optional position, and a human readable description.
type Event struct {
	id          kernel.UUID
	orderID     kernel.UUID
	status      order.Status
	location    *kernel.GeoPoint
	description string
	recordedAt  time.Time

	isConstructed bool
}

// NewEvent records a tracking event for an order. location may be nil when
// the event has no position, for example order creation.
func NewEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	status order.Status,
	location *kernel.GeoPoint,
	description string,
	at time.Time,
) (*Event, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Event{
		id:            id,
		orderID:       orderID,
		status:        status,
		location:      location,
		description:   description,
		recordedAt:    at.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs an Event from persistence.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	status order.Status,
	location *kernel.GeoPoint,
	description string,
	recordedAt time.Time,
) (*Event, error) {
	return NewEvent(id, orderID, status, location, description, recordedAt)
}

// Validate ensures the Event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// OrderID returns the order this event belongs to.
func (e *Event) OrderID() kernel.UUID { return e.orderID }

// Status returns the order status the event records.
func (e *Event) Status() order.Status { return e.status }

// Location returns where the event happened, nil when unknown.
func (e *Event) Location() *kernel.GeoPoint { return e.location }

// Description returns the human readable event text.
func (e *Event) Description() string { return e.description }

// RecordedAt returns when the event happened, in UTC.
func (e *Event) RecordedAt() time.Time { return e.recordedAt }
