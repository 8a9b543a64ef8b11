// Package batchrepo persists batch aggregates. The member order ids live in a
// serialized column; the authoritative order-to-batch link is the batch_id
// column on the orders table.
package batchrepo

import (
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database structure for persisting batch aggregates.
type BatchDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderIDs      []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	CurrentWeight float64
	MaxWeight     float64
	MaxOrders     int
	Status        int         `gorm:"index"`
	DriverID      *uuid.UUID  `gorm:"type:uuid;index"`
	Center        GeoPointDTO `gorm:"embedded;embeddedPrefix:center_"`
	EstimatedKm   float64
	CreatedAt     time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (BatchDTO) TableName() string {
	return "batches"
}

// GeoPointDTO stores a coordinate pair embedded in the owning table.
type GeoPointDTO struct {
	Lat float64
	Lng float64
}

// fromDomain converts a batch aggregate to its database representation.
func fromDomain(aggregate *batch.Batch) BatchDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	orderIDs := make([]uuid.UUID, 0, len(aggregate.OrderIDs()))
	for _, orderID := range aggregate.OrderIDs() {
		orderIDs = append(orderIDs, orderID.Bytes())
	}

	return BatchDTO{
		ID:            aggregate.ID().Bytes(),
		OrderIDs:      orderIDs,
		CurrentWeight: aggregate.CurrentWeight(),
		MaxWeight:     aggregate.MaxWeight(),
		MaxOrders:     aggregate.MaxOrders(),
		Status:        int(aggregate.Status()),
		DriverID:      driverID,
		Center: GeoPointDTO{
			Lat: aggregate.Center().Lat(),
			Lng: aggregate.Center().Lng(),
		},
		EstimatedKm: aggregate.EstimatedKm(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain reconstructs the batch aggregate from a database row.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.OrderIDs))
	for _, raw := range dto.OrderIDs {
		orderID, orderErr := kernel.UUIDFromBytes(raw[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		parsed, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &parsed
	}

	center, err := kernel.NewGeoPoint(dto.Center.Lat, dto.Center.Lng)
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(id, orderIDs, dto.CurrentWeight, dto.MaxWeight,
		dto.MaxOrders, batch.Status(dto.Status), driverID, center,
		dto.EstimatedKm, dto.CreatedAt)
}
