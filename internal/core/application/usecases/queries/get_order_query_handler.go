package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order detail, or NotFound.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var id uuid.UUID
	var batchID, driverID *uuid.UUID
	var amount string
	var status int
	var lat, lng float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_phone,
			customer_address,
			customer_pincode,
			location_lat,
			location_lng,
			total_weight,
			total_amount,
			payment_method,
			status,
			delivery_slot,
			batch_id,
			driver_id,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.CustomerName,
		&response.Phone,
		&response.Address,
		&response.Pincode,
		&lat,
		&lng,
		&response.TotalWeight,
		&amount,
		&response.PaymentMethod,
		&status,
		&response.DeliverySlot,
		&batchID,
		&driverID,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.TotalAmount, err = decimal.NewFromString(amount); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.DropLocation, err = kernel.NewGeoPoint(lat, lng); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Status = order.Status(status).String()

	if batchID != nil {
		parsed, batchErr := kernel.UUIDFromBytes((*batchID)[:])
		if batchErr != nil {
			return GetOrderQueryResponse{}, batchErr
		}
		response.BatchID = &parsed
	}
	if driverID != nil {
		parsed, driverErr := kernel.UUIDFromBytes((*driverID)[:])
		if driverErr != nil {
			return GetOrderQueryResponse{}, driverErr
		}
		response.DriverID = &parsed
	}

	return response, nil
}
