package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTrackingQueryHandler assembles the tracking snapshot: the order row, the
// assigned driver if any, and the event history, each read committed without
// locks.
type GetTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingQueryHandler creates a handler for tracking snapshot reads.
func NewGetTrackingQueryHandler(db *gorm.DB) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{db: db}
}

// Handle returns the snapshot, or NotFound for an unknown order.
func (h GetTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingQuery,
) (GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	response, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	if response.History, err = h.readHistory(ctx, query.OrderID()); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	return response, nil
}

func (h GetTrackingQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (GetTrackingQueryResponse, error) {
	var response GetTrackingQueryResponse
	var status int
	var dropLat, dropLng float64
	var driverName, driverPhone *string
	var driverLat, driverLng *float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			o.customer_name,
			o.location_lat,
			o.location_lng,
			d.name,
			d.phone,
			d.location_lat,
			d.location_lng
		FROM orders o
		LEFT JOIN drivers d ON d.id = o.driver_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&status,
		&response.CustomerName,
		&dropLat,
		&dropLng,
		&driverName,
		&driverPhone,
		&driverLat,
		&driverLng,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetTrackingQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetTrackingQueryResponse{}, err
	}

	response.OrderID = orderID
	response.Status = order.Status(status).String()

	if response.DropLocation, err = kernel.NewGeoPoint(dropLat, dropLng); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	if driverName != nil && driverPhone != nil && driverLat != nil && driverLng != nil {
		location, locErr := kernel.NewGeoPoint(*driverLat, *driverLng)
		if locErr != nil {
			return GetTrackingQueryResponse{}, locErr
		}
		response.Driver = &TrackingDriverResponse{
			Name:     *driverName,
			Phone:    *driverPhone,
			Location: location,
		}
	}

	return response, nil
}

func (h GetTrackingQueryHandler) readHistory(ctx context.Context, orderID kernel.UUID) ([]TrackingEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			description,
			location_lat,
			location_lng,
			recorded_at
		FROM tracking_events
		WHERE order_id = ?
		ORDER BY recorded_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]TrackingEventResponse, 0)
	for rows.Next() {
		var event TrackingEventResponse
		var status int
		var lat, lng *float64

		err = rows.Scan(&status, &event.Description, &lat, &lng, &event.RecordedAt)
		if err != nil {
			return nil, err
		}

		event.Status = order.Status(status).String()
		if lat != nil && lng != nil {
			location, locErr := kernel.NewGeoPoint(*lat, *lng)
			if locErr != nil {
				return nil, locErr
			}
			event.Location = &location
		}

		history = append(history, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
