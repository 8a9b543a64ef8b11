package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTodayBatchesQueryHandler reads today's batches from the database. The
// member count comes from the orders table, which is the authoritative link.
type GetTodayBatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetTodayBatchesQueryHandler creates a handler for dispatch board reads.
func NewGetTodayBatchesQueryHandler(db *gorm.DB) GetTodayBatchesQueryHandler {
	return GetTodayBatchesQueryHandler{db: db}
}

// Handle returns all batches built since local midnight, newest first.
func (h GetTodayBatchesQueryHandler) Handle(
	ctx context.Context,
	query GetTodayBatchesQuery,
) ([]GetTodayBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	batches := make([]GetTodayBatchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.status,
			b.current_weight,
			b.estimated_km,
			b.driver_id,
			(SELECT COUNT(*) FROM orders o WHERE o.batch_id = b.id) AS current_orders
		FROM batches b
		WHERE b.created_at >= ?
		ORDER BY b.created_at DESC, b.id
	`, midnight).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetTodayBatchesQueryResponse
		var id uuid.UUID
		var driverID *uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&status,
			&row.CurrentWeight,
			&row.EstimatedKm,
			&driverID,
			&row.CurrentOrders,
		)
		if err != nil {
			return nil, err
		}

		batchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = batchID
		row.Status = batch.Status(status).String()

		if driverID != nil {
			parsed, driverErr := kernel.UUIDFromBytes((*driverID)[:])
			if driverErr != nil {
				return nil, driverErr
			}
			row.DriverID = &parsed
		}

		batches = append(batches, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
