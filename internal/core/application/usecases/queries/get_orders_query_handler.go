package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order summaries from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list reads.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns order summaries, oldest first, honoring the optional status
// filter.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT
			id,
			customer_name,
			customer_pincode,
			total_weight,
			total_amount,
			payment_method,
			status,
			delivery_slot,
			batch_id,
			driver_id
		FROM orders
	`
	args := make([]any, 0, 1)
	if status := query.Status(); status != nil {
		q += " WHERE status = ?"
		args = append(args, int(*status))
	}
	q += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		row, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderSummary reads one order summary row. Shared with the batch member
// listing, which selects the same columns.
func scanOrderSummary(rows *sql.Rows) (OrderSummaryResponse, error) {
	var row OrderSummaryResponse
	var id uuid.UUID
	var batchID, driverID *uuid.UUID
	var amount string
	var status int

	err := rows.Scan(
		&id,
		&row.CustomerName,
		&row.Pincode,
		&row.TotalWeight,
		&amount,
		&row.PaymentMethod,
		&status,
		&row.DeliverySlot,
		&batchID,
		&driverID,
	)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	row.ID = orderID

	row.TotalAmount, err = decimal.NewFromString(amount)
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	row.Status = order.Status(status).String()

	if batchID != nil {
		parsed, batchErr := kernel.UUIDFromBytes((*batchID)[:])
		if batchErr != nil {
			return OrderSummaryResponse{}, batchErr
		}
		row.BatchID = &parsed
	}
	if driverID != nil {
		parsed, driverErr := kernel.UUIDFromBytes((*driverID)[:])
		if driverErr != nil {
			return OrderSummaryResponse{}, driverErr
		}
		row.DriverID = &parsed
	}

	return row, nil
}
