// Package paymentrepo persists payment records.
package paymentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payments.
type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Method    string
	Status    string `gorm:"index"`
	Reference string
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		Amount:    aggregate.Amount(),
		Method:    string(aggregate.Method()),
		Status:    string(aggregate.Status()),
		Reference: aggregate.Reference(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain reconstructs the payment from a database row.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	method, err := order.PaymentMethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, dto.Amount, method, status,
		dto.Reference, dto.CreatedAt)
}
