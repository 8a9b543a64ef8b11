package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetBatchOrdersQueryHandler reads the member orders of a batch.
type GetBatchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBatchOrdersQueryHandler creates a handler for batch member reads.
func NewGetBatchOrdersQueryHandler(db *gorm.DB) GetBatchOrdersQueryHandler {
	return GetBatchOrdersQueryHandler{db: db}
}

// Handle returns the batch's member orders, oldest first. An unknown batch id
// is NotFound rather than an empty list.
func (h GetBatchOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBatchOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var batchCount int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM batches WHERE id = ?`, query.BatchID().Bytes()).
		Scan(&batchCount).Error
	if err != nil {
		return nil, err
	}
	if batchCount == 0 {
		return nil, errs.NewObjectNotFoundError("batch", query.BatchID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE batch_id = ?
		ORDER BY created_at, id
	`, query.BatchID().Bytes()).Rows()
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
