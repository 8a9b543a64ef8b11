// Package trackingrepo persists the append-only order tracking history.
package trackingrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO represents one tracking event row. The location columns are null
// when the event carries no position.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Status      int
	LocationLat *float64
	LocationLng *float64
	Description string
	RecordedAt  time.Time
}

// TableName overrides GORM's default naming convention.
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *tracking.Event) EventDTO {
	var lat, lng *float64
	if loc := event.Location(); loc != nil {
		latVal, lngVal := loc.Lat(), loc.Lng()
		lat, lng = &latVal, &lngVal
	}

	return EventDTO{
		ID:          event.ID().Bytes(),
		OrderID:     event.OrderID().Bytes(),
		Status:      int(event.Status()),
		LocationLat: lat,
		LocationLng: lng,
		Description: event.Description(),
		RecordedAt:  event.RecordedAt(),
	}
}

// toDomain reconstructs the tracking event from a database row.
func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLng)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return tracking.RestoreEvent(id, orderID, order.Status(dto.Status),
		location, dto.Description, dto.RecordedAt)
}
