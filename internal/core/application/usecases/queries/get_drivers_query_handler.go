package queries

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriversQueryHandler reads the driver roster from the database.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver roster reads.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle returns every driver sorted by name.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]GetDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			vehicle_number,
			status,
			location_lat,
			location_lng,
			last_seen_at
		FROM drivers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]GetDriversQueryResponse, 0)
	for rows.Next() {
		var row GetDriversQueryResponse
		var id uuid.UUID
		var status int
		var lat, lng float64

		err = rows.Scan(
			&id,
			&row.Name,
			&row.Phone,
			&row.VehicleType,
			&row.VehicleNumber,
			&status,
			&lat,
			&lng,
			&row.LastSeenAt,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = driverID
		row.Status = driver.Status(status).String()

		location, locErr := kernel.NewGeoPoint(lat, lng)
		if locErr != nil {
			return nil, locErr
		}
		row.Location = location

		drivers = append(drivers, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
