// Package orderrepo persists order aggregates. It maps the aggregate to a
// single orders row with the customer and drop point embedded and the item
// lines serialized as JSON.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status for the batch builder's pending scan and by batch for
// member lookups.
type OrderDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Customer      CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Location      GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	Items         []ItemDTO   `gorm:"type:jsonb;serializer:json"`
	TotalWeight   float64
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod string
	DeliverySlot  string
	Status        int        `gorm:"index"`
	BatchID       *uuid.UUID `gorm:"type:uuid;index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the recipient embedded in the orders table.
type CustomerDTO struct {
	Name    string
	Phone   string
	Address string
	Pincode string `gorm:"index"`
}

// GeoPointDTO stores a coordinate pair embedded in the owning table.
type GeoPointDTO struct {
	Lat float64
	Lng float64
}

// ItemDTO is one order line inside the serialized items column.
type ItemDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Weight   float64         `json:"weight"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var batchID *uuid.UUID
	if id := aggregate.Batch(); id != nil {
		raw := id.Bytes()
		batchID = &raw
	}
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Weight:   item.Weight(),
		})
	}

	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		Customer: CustomerDTO{
			Name:    aggregate.Customer().Name(),
			Phone:   aggregate.Customer().Phone(),
			Address: aggregate.Customer().Address(),
			Pincode: aggregate.Customer().Pincode(),
		},
		Location: GeoPointDTO{
			Lat: aggregate.Location().Lat(),
			Lng: aggregate.Location().Lng(),
		},
		Items:         items,
		TotalWeight:   aggregate.TotalWeight(),
		TotalAmount:   aggregate.TotalAmount(),
		PaymentMethod: string(aggregate.PaymentMethod()),
		DeliverySlot:  aggregate.DeliverySlot(),
		Status:        int(aggregate.Status()),
		BatchID:       batchID,
		DriverID:      driverID,
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain reconstructs the order aggregate from a database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone,
		dto.Customer.Address, dto.Customer.Pincode)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.Price, itemDTO.Weight)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var batchID *kernel.UUID
	if dto.BatchID != nil {
		parsed, batchErr := kernel.UUIDFromBytes((*dto.BatchID)[:])
		if batchErr != nil {
			return nil, batchErr
		}
		batchID = &parsed
	}
	var driverID *kernel.UUID
	if dto.DriverID != nil {
		parsed, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &parsed
	}

	return order.RestoreOrder(id, customer, location, items, dto.TotalWeight,
		dto.TotalAmount, method, dto.DeliverySlot, order.Status(dto.Status),
		batchID, driverID, dto.CreatedAt)
}
