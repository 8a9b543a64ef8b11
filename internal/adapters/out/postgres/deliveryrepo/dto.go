// Package deliveryrepo persists per-order handover records, including the
// active confirmation code and its lifecycle timestamps.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery
// records. One row per order; re-pointing a batch rewrites driver_id in
// place.
type DeliveryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BatchID        uuid.UUID `gorm:"type:uuid;index"`
	DriverID       uuid.UUID `gorm:"type:uuid;index"`
	OTPCode        string
	OTPGeneratedAt *time.Time
	OTPConsumed    bool
	StartedAt      time.Time
	ArrivedAt      *time.Time
	CompletedAt    *time.Time
	PaymentMethod  string
	Amount         decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming convention.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery record to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		BatchID:        aggregate.BatchID().Bytes(),
		DriverID:       aggregate.DriverID().Bytes(),
		OTPCode:        aggregate.OTPCode(),
		OTPGeneratedAt: aggregate.OTPGeneratedAt(),
		OTPConsumed:    aggregate.OTPConsumed(),
		StartedAt:      aggregate.StartedAt(),
		ArrivedAt:      aggregate.ArrivedAt(),
		CompletedAt:    aggregate.CompletedAt(),
		PaymentMethod:  string(aggregate.PaymentMethod()),
		Amount:         aggregate.Amount(),
	}
}

// toDomain reconstructs the delivery record from a database row.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	batchID, err := kernel.UUIDFromBytes(dto.BatchID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, batchID, driverID, dto.OTPCode,
		dto.OTPGeneratedAt, dto.OTPConsumed, dto.StartedAt, dto.ArrivedAt,
		dto.CompletedAt, method, dto.Amount)
}
