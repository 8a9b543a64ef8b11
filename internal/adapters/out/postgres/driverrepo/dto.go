// Package driverrepo persists driver aggregates.
package driverrepo

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. Indexed by status for the available-driver scan.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Phone         string
	VehicleType   string
	VehicleNumber string
	Status        int         `gorm:"index"`
	Location      GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	LastSeenAt    time.Time
}

// TableName overrides GORM's default naming convention.
func (DriverDTO) TableName() string {
	return "drivers"
}

// GeoPointDTO stores a coordinate pair embedded in the owning table.
type GeoPointDTO struct {
	Lat float64
	Lng float64
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone(),
		VehicleType:   aggregate.VehicleType(),
		VehicleNumber: aggregate.VehicleNumber(),
		Status:        int(aggregate.Status()),
		Location: GeoPointDTO{
			Lat: aggregate.Location().Lat(),
			Lng: aggregate.Location().Lng(),
		},
		LastSeenAt: aggregate.LastSeenAt(),
	}
}

// toDomain reconstructs the driver aggregate from a database row.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, dto.VehicleType,
		dto.VehicleNumber, driver.Status(dto.Status), location, dto.LastSeenAt)
}
