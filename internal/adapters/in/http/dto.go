package http

import (
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// Request bodies. Structural constraints live in validate tags; business
// rules stay with the commands.

type OrderItemRequest struct {
	Name     string          `json:"name"      validate:"required"`
	Quantity int             `json:"quantity"  validate:"gt=0"`
	Price    decimal.Decimal `json:"price"`
	Weight   float64         `json:"weight"    validate:"gt=0"`
}

type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"  validate:"required"`
	Phone         string             `json:"phone"          validate:"required"`
	Address       string             `json:"address"        validate:"required"`
	Pincode       string             `json:"pincode"        validate:"required"`
	Lat           float64            `json:"lat"`
	Lng           float64            `json:"lng"`
	Items         []OrderItemRequest `json:"items"          validate:"min=1,dive"`
	TotalWeight   float64            `json:"total_weight"   validate:"gt=0"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method" validate:"required"`
	DeliverySlot  string             `json:"delivery_slot"  validate:"required"`
}

type UpdateOrderRequest struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	Phone        string  `json:"phone"         validate:"required"`
	Address      string  `json:"address"       validate:"required"`
	Pincode      string  `json:"pincode"       validate:"required"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	DeliverySlot string  `json:"delivery_slot" validate:"required"`
}

type BuildBatchesRequest struct {
	Algorithm string  `json:"algorithm"`
	MaxWeight float64 `json:"max_weight" validate:"gte=0"`
	MaxOrders int     `json:"max_orders" validate:"gte=0"`
}

type AssignBatchRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

type MarkArrivedRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required,len=6"`
}

type RecordPaymentRequest struct {
	OrderID   string          `json:"order_id"  validate:"required,uuid"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

type CreateDriverRequest struct {
	Name          string  `json:"name"           validate:"required"`
	Phone         string  `json:"phone"          validate:"required"`
	VehicleType   string  `json:"vehicle_type"   validate:"required"`
	VehicleNumber string  `json:"vehicle_number" validate:"required"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

type DriverLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SettleRequest struct {
	SettlementID string          `json:"settlement_id" validate:"required,uuid"`
	DriverID     string          `json:"driver_id"     validate:"required,uuid"`
	Amount       decimal.Decimal `json:"amount"`
}

// Response bodies.

type IDResponse struct {
	ID string `json:"id"`
}

type GeoPointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BuiltBatchResponse struct {
	BatchID     string   `json:"batch_id"`
	OrderIDs    []string `json:"order_ids"`
	Weight      float64  `json:"weight"`
	EstimatedKm float64  `json:"estimated_km"`
}

type UnbatchableOrderResponse struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

type BuildBatchesResponse struct {
	Batches     []BuiltBatchResponse       `json:"batches"`
	Unbatchable []UnbatchableOrderResponse `json:"unbatchable"`
}

type BatchSummaryResponse struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	CurrentWeight float64 `json:"current_weight"`
	CurrentOrders int     `json:"current_orders"`
	EstimatedKm   float64 `json:"estimated_km"`
	DriverID      *string `json:"driver_id,omitempty"`
}

type OrderSummaryResponse struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Pincode       string          `json:"pincode"`
	TotalWeight   float64         `json:"total_weight"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	DeliverySlot  string          `json:"delivery_slot"`
	BatchID       *string         `json:"batch_id,omitempty"`
	DriverID      *string         `json:"driver_id,omitempty"`
}

type OrderDetailResponse struct {
	OrderSummaryResponse
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
	DropLocation GeoPointResponse `json:"drop_location"`
	CreatedAt    time.Time        `json:"created_at"`
}

type OTPResponse struct {
	OTP string `json:"otp"`
}

type VerifyOTPResponse struct {
	Success         bool `json:"success"`
	PaymentUnlocked bool `json:"payment_unlocked"`
}

type PaymentCreatedResponse struct {
	PaymentID string `json:"payment_id"`
}

type PaymentResponse struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type DriverResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	VehicleType   string           `json:"vehicle_type"`
	VehicleNumber string           `json:"vehicle_number"`
	Status        string           `json:"status"`
	Location      GeoPointResponse `json:"location"`
	LastSeenAt    time.Time        `json:"last_seen_at"`
}

type CashLedgerResponse struct {
	DriverID          string          `json:"driver_id"`
	CurrentBalance    decimal.Decimal `json:"current_balance"`
	TodayCollections  decimal.Decimal `json:"today_collections"`
	PendingSettlement decimal.Decimal `json:"pending_settlement"`
}

type SettleResponse struct {
	SettlementID string          `json:"settlement_id"`
	NewBalance   decimal.Decimal `json:"new_balance"`
}

type TrackingDriverResponse struct {
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	Location GeoPointResponse `json:"location"`
}

type TrackingEventResponse struct {
	Status      string            `json:"status"`
	Description string            `json:"description,omitempty"`
	Location    *GeoPointResponse `json:"location,omitempty"`
	RecordedAt  time.Time         `json:"recorded_at"`
}

type TrackingResponse struct {
	OrderID      string                  `json:"order_id"`
	Status       string                  `json:"status"`
	CustomerName string                  `json:"customer_name"`
	DropLocation GeoPointResponse        `json:"drop_location"`
	Driver       *TrackingDriverResponse `json:"driver,omitempty"`
	History      []TrackingEventResponse `json:"history"`
}

func geoPointResponse(p kernel.GeoPoint) GeoPointResponse {
	return GeoPointResponse{Lat: p.Lat(), Lng: p.Lng()}
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func buildBatchesResponse(result commands.BuildBatchesResult) BuildBatchesResponse {
	response := BuildBatchesResponse{
		Batches:     make([]BuiltBatchResponse, 0, len(result.Batches)),
		Unbatchable: make([]UnbatchableOrderResponse, 0, len(result.Unbatchable)),
	}
	for _, b := range result.Batches {
		orderIDs := make([]string, 0, len(b.OrderIDs))
		for _, id := range b.OrderIDs {
			orderIDs = append(orderIDs, id.String())
		}
		response.Batches = append(response.Batches, BuiltBatchResponse{
			BatchID:     b.BatchID.String(),
			OrderIDs:    orderIDs,
			Weight:      b.Weight,
			EstimatedKm: b.EstimatedKm,
		})
	}
	for _, u := range result.Unbatchable {
		response.Unbatchable = append(response.Unbatchable, unbatchableResponse(u))
	}
	return response
}

func unbatchableResponse(u services.UnbatchableOrder) UnbatchableOrderResponse {
	return UnbatchableOrderResponse{OrderID: u.OrderID.String(), Reason: u.Reason}
}

func orderSummaryResponse(row queries.OrderSummaryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:            row.ID.String(),
		CustomerName:  row.CustomerName,
		Pincode:       row.Pincode,
		TotalWeight:   row.TotalWeight,
		TotalAmount:   row.TotalAmount,
		PaymentMethod: row.PaymentMethod,
		Status:        row.Status,
		DeliverySlot:  row.DeliverySlot,
		BatchID:       optionalID(row.BatchID),
		DriverID:      optionalID(row.DriverID),
	}
}

func orderSummaryResponses(rows []queries.OrderSummaryResponse) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, orderSummaryResponse(row))
	}
	return response
}

func trackingResponse(snapshot queries.GetTrackingQueryResponse) TrackingResponse {
	response := TrackingResponse{
		OrderID:      snapshot.OrderID.String(),
		Status:       snapshot.Status,
		CustomerName: snapshot.CustomerName,
		DropLocation: geoPointResponse(snapshot.DropLocation),
		History:      make([]TrackingEventResponse, 0, len(snapshot.History)),
	}
	if snapshot.Driver != nil {
		response.Driver = &TrackingDriverResponse{
			Name:     snapshot.Driver.Name,
			Phone:    snapshot.Driver.Phone,
			Location: geoPointResponse(snapshot.Driver.Location),
		}
	}
	for _, event := range snapshot.History {
		e := TrackingEventResponse{
			Status:      event.Status,
			Description: event.Description,
			RecordedAt:  event.RecordedAt,
		}
		if event.Location != nil {
			loc := geoPointResponse(*event.Location)
			e.Location = &loc
		}
		response.History = append(response.History, e)
	}
	return response
}
