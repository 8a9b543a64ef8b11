package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery retrieves the tracking snapshot for one order: current
// status, the assigned driver's position, and the full event history. Built
// for high frequency polling; reads committed state without locks.
type GetTrackingQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a query for an order's tracking snapshot.
func NewGetTrackingQuery(orderID kernel.UUID) (GetTrackingQuery, error) {
	q := GetTrackingQuery{guard: guard.NewConstructorGuard()}
	if err := q.setOrderID(orderID); err != nil {
		return GetTrackingQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// OrderID returns the order being tracked.
func (q GetTrackingQuery) OrderID() kernel.UUID { return q.orderID }

func (q *GetTrackingQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// TrackingDriverResponse is the assigned driver's public view in a snapshot.
type TrackingDriverResponse struct {
	Name     string
	Phone    string
	Location kernel.GeoPoint
}

// TrackingEventResponse is one history entry in a snapshot.
type TrackingEventResponse struct {
	Status      string
	Description string
	Location    *kernel.GeoPoint
	RecordedAt  time.Time
}

// GetTrackingQueryResponse is the tracking snapshot for one order.
type GetTrackingQueryResponse struct {
	OrderID      kernel.UUID
	Status       string
	CustomerName string
	DropLocation kernel.GeoPoint
	Driver       *TrackingDriverResponse
	History      []TrackingEventResponse
}
