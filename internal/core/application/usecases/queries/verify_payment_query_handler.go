package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VerifyPaymentQueryHandler reads one payment's state from the database.
type VerifyPaymentQueryHandler struct {
	db *gorm.DB
}

// NewVerifyPaymentQueryHandler creates a handler for payment verification
// reads.
func NewVerifyPaymentQueryHandler(db *gorm.DB) VerifyPaymentQueryHandler {
	return VerifyPaymentQueryHandler{db: db}
}

// Handle returns the payment's current state, or NotFound.
func (h VerifyPaymentQueryHandler) Handle(
	ctx context.Context,
	query VerifyPaymentQuery,
) (VerifyPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return VerifyPaymentQueryResponse{}, err
	}

	var response VerifyPaymentQueryResponse
	var id, orderID uuid.UUID
	var amount string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			amount,
			method,
			status,
			reference,
			created_at
		FROM payments
		WHERE id = ?
	`, query.PaymentID().Bytes()).Row()

	err := row.Scan(
		&id,
		&orderID,
		&amount,
		&response.Method,
		&response.Status,
		&response.Reference,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VerifyPaymentQueryResponse{}, errs.NewObjectNotFoundError("payment", query.PaymentID().String())
		}
		return VerifyPaymentQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return VerifyPaymentQueryResponse{}, err
	}
	if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return VerifyPaymentQueryResponse{}, err
	}
	if response.Amount, err = decimal.NewFromString(amount); err != nil {
		return VerifyPaymentQueryResponse{}, err
	}

	return response, nil
}
