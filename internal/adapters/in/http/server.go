// Package http exposes the dispatch engine over a REST surface. Handlers
// translate between JSON DTOs and application commands and queries; they hold
// no business logic of their own.
package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// BatchDefaults are the builder limits applied when a build request leaves
// them unset.
type BatchDefaults struct {
	Algorithm string
	MaxWeight float64
	MaxOrders int
}

// Server wires HTTP routes to the application's command and query handlers.
type Server struct {
	batchDefaults BatchDefaults

	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderHandler          commands.UpdateOrderCommandHandler
	deleteOrderHandler          commands.DeleteOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	buildBatchesHandler         commands.BuildBatchesCommandHandler
	assignDriverHandler         commands.AssignDriverCommandHandler
	startBatchHandler           commands.StartBatchCommandHandler
	markArrivedHandler          commands.MarkArrivedCommandHandler
	markDeliveredHandler        commands.MarkDeliveredCommandHandler
	verifyOTPHandler            commands.VerifyOTPCommandHandler
	recordPaymentHandler        commands.RecordPaymentCommandHandler
	refundPaymentHandler        commands.RefundPaymentCommandHandler
	createDriverHandler         commands.CreateDriverCommandHandler
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler
	settleHandler               commands.SettleCommandHandler

	// Query handlers
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getTodayBatchesHandler queries.GetTodayBatchesQueryHandler
	getBatchOrdersHandler  queries.GetBatchOrdersQueryHandler
	getDriversHandler      queries.GetDriversQueryHandler
	getCashLedgerHandler   queries.GetCashLedgerQueryHandler
	verifyPaymentHandler   queries.VerifyPaymentQueryHandler
	getTrackingHandler     queries.GetTrackingQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	batchDefaults BatchDefaults,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	buildBatchesHandler commands.BuildBatchesCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	startBatchHandler commands.StartBatchCommandHandler,
	markArrivedHandler commands.MarkArrivedCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	verifyOTPHandler commands.VerifyOTPCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	refundPaymentHandler commands.RefundPaymentCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler,
	settleHandler commands.SettleCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getTodayBatchesHandler queries.GetTodayBatchesQueryHandler,
	getBatchOrdersHandler queries.GetBatchOrdersQueryHandler,
	getDriversHandler queries.GetDriversQueryHandler,
	getCashLedgerHandler queries.GetCashLedgerQueryHandler,
	verifyPaymentHandler queries.VerifyPaymentQueryHandler,
	getTrackingHandler queries.GetTrackingQueryHandler,
) *Server {
	return &Server{
		batchDefaults:               batchDefaults,
		createOrderHandler:          createOrderHandler,
		updateOrderHandler:          updateOrderHandler,
		deleteOrderHandler:          deleteOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		buildBatchesHandler:         buildBatchesHandler,
		assignDriverHandler:         assignDriverHandler,
		startBatchHandler:           startBatchHandler,
		markArrivedHandler:          markArrivedHandler,
		markDeliveredHandler:        markDeliveredHandler,
		verifyOTPHandler:            verifyOTPHandler,
		recordPaymentHandler:        recordPaymentHandler,
		refundPaymentHandler:        refundPaymentHandler,
		createDriverHandler:         createDriverHandler,
		updateDriverLocationHandler: updateDriverLocationHandler,
		settleHandler:               settleHandler,
		getOrdersHandler:            getOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getTodayBatchesHandler:      getTodayBatchesHandler,
		getBatchOrdersHandler:       getBatchOrdersHandler,
		getDriversHandler:           getDriversHandler,
		getCashLedgerHandler:        getCashLedgerHandler,
		verifyPaymentHandler:        verifyPaymentHandler,
		getTrackingHandler:          getTrackingHandler,
	}
}

// RegisterRoutes mounts every route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PATCH("/orders/:id", s.UpdateOrder)
	e.DELETE("/orders/:id", s.DeleteOrder)
	e.POST("/orders/:id/cancel", s.CancelOrder)
	e.POST("/orders/:id/arrived", s.MarkArrived)
	e.POST("/orders/:id/delivered", s.MarkDelivered)
	e.POST("/orders/:id/verify-otp", s.VerifyOTP)

	e.POST("/batches/create", s.BuildBatches)
	e.GET("/batches/today", s.GetTodayBatches)
	e.POST("/batches/:id/assign", s.AssignBatch)
	e.POST("/batches/:id/start", s.StartBatch)
	e.GET("/batches/:id/orders", s.GetBatchOrders)

	e.POST("/payments/upi", s.RecordUPIPayment)
	e.POST("/payments/cash", s.RecordCashPayment)
	e.GET("/payments/:id/verify", s.VerifyPayment)
	e.POST("/payments/:id/refund", s.RefundPayment)

	e.GET("/drivers", s.GetDrivers)
	e.POST("/drivers", s.CreateDriver)
	e.POST("/drivers/:id/location", s.UpdateDriverLocation)
	e.GET("/drivers/:id/cash-ledger", s.GetCashLedger)

	e.POST("/settlements", s.Settle)

	e.GET("/tracking/:orderId", s.GetTracking)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.ItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemSpec{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Weight:   item.Weight,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.CustomerName,
		req.Phone,
		req.Address,
		req.Pincode,
		req.Lat,
		req.Lng,
		items,
		req.TotalWeight,
		req.TotalAmount,
		req.PaymentMethod,
		req.DeliverySlot,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// GetOrders handles GET /orders with an optional ?status= filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummaryResponses(rows))
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetailResponse{
		OrderSummaryResponse: orderSummaryResponse(row.OrderSummaryResponse),
		Phone:                row.Phone,
		Address:              row.Address,
		DropLocation:         geoPointResponse(row.DropLocation),
		CreatedAt:            row.CreatedAt,
	})
}

// UpdateOrder handles PATCH /orders/:id. Only pending orders are editable.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID,
		req.CustomerName,
		req.Phone,
		req.Address,
		req.Pincode,
		req.Lat,
		req.Lng,
		req.DeliverySlot,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /orders/:id. Only pending orders are deletable.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkArrived handles POST /orders/:id/arrived. Issues a fresh OTP for the
// stop; re-arrival re-issues and invalidates the previous code.
func (s *Server) MarkArrived(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	req := MarkArrivedRequest{}
	// The body is optional; a bare POST means "arrived, position unknown".
	if ctx.Request().ContentLength > 0 {
		if err := bind(ctx, &req); err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewMarkArrivedCommand(orderID, req.Lat, req.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	code, err := s.markArrivedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OTPResponse{OTP: code})
}

// MarkDelivered handles POST /orders/:id/delivered, the prepaid handoff that
// completes without an OTP exchange.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyOTP handles POST /orders/:id/verify-otp.
func (s *Server) VerifyOTP(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req VerifyOTPRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewVerifyOTPCommand(orderID, req.OTP)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.verifyOTPHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VerifyOTPResponse{
		Success:         result.Success,
		PaymentUnlocked: result.PaymentUnlocked,
	})
}

// BuildBatches handles POST /batches/create. Unset limits fall back to the
// configured defaults.
func (s *Server) BuildBatches(ctx echo.Context) error {
	req := BuildBatchesRequest{}
	if ctx.Request().ContentLength > 0 {
		if err := bind(ctx, &req); err != nil {
			return writeError(ctx, err)
		}
	}

	if req.Algorithm == "" {
		req.Algorithm = s.batchDefaults.Algorithm
	}
	if req.MaxWeight == 0 {
		req.MaxWeight = s.batchDefaults.MaxWeight
	}
	if req.MaxOrders == 0 {
		req.MaxOrders = s.batchDefaults.MaxOrders
	}

	cmd, err := commands.NewBuildBatchesCommand(req.Algorithm, req.MaxWeight, req.MaxOrders)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.buildBatchesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, buildBatchesResponse(result))
}

// GetTodayBatches handles GET /batches/today.
func (s *Server) GetTodayBatches(ctx echo.Context) error {
	query := queries.NewGetTodayBatchesQuery()

	rows, err := s.getTodayBatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BatchSummaryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, BatchSummaryResponse{
			ID:            row.ID.String(),
			Status:        row.Status,
			CurrentWeight: row.CurrentWeight,
			CurrentOrders: row.CurrentOrders,
			EstimatedKm:   row.EstimatedKm,
			DriverID:      optionalID(row.DriverID),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignBatch handles POST /batches/:id/assign.
func (s *Server) AssignBatch(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignBatchRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(batchID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartBatch handles POST /batches/:id/start.
func (s *Server) StartBatch(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartBatchCommand(batchID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBatchOrders handles GET /batches/:id/orders.
func (s *Server) GetBatchOrders(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBatchOrdersQuery(batchID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getBatchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummaryResponses(rows))
}

// RecordUPIPayment handles POST /payments/upi.
func (s *Server) RecordUPIPayment(ctx echo.Context) error {
	return s.recordPayment(ctx, "upi")
}

// RecordCashPayment handles POST /payments/cash.
func (s *Server) RecordCashPayment(ctx echo.Context) error {
	return s.recordPayment(ctx, "cash")
}

func (s *Server) recordPayment(ctx echo.Context, method string) error {
	var req RecordPaymentRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(paymentID, orderID, req.Amount, method, req.Reference)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PaymentCreatedResponse{PaymentID: paymentID.String()})
}

// VerifyPayment handles GET /payments/:id/verify.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	paymentID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewVerifyPaymentQuery(paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.verifyPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PaymentResponse{
		ID:        row.ID.String(),
		OrderID:   row.OrderID.String(),
		Amount:    row.Amount,
		Method:    row.Method,
		Status:    row.Status,
		Reference: row.Reference,
		CreatedAt: row.CreatedAt,
	})
}

// RefundPayment handles POST /payments/:id/refund.
func (s *Server) RefundPayment(ctx echo.Context) error {
	paymentID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRefundPaymentCommand(paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.refundPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDrivers handles GET /drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetDriversQuery()

	rows, err := s.getDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DriverResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, DriverResponse{
			ID:            row.ID.String(),
			Name:          row.Name,
			Phone:         row.Phone,
			VehicleType:   row.VehicleType,
			VehicleNumber: row.VehicleNumber,
			Status:        row.Status,
			Location:      geoPointResponse(row.Location),
			LastSeenAt:    row.LastSeenAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID,
		req.Name,
		req.Phone,
		req.VehicleType,
		req.VehicleNumber,
		req.Lat,
		req.Lng,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: driverID.String()})
}

// UpdateDriverLocation handles POST /drivers/:id/location.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req DriverLocationRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, req.Lat, req.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateDriverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCashLedger handles GET /drivers/:id/cash-ledger.
func (s *Server) GetCashLedger(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCashLedgerQuery(driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.getCashLedgerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CashLedgerResponse{
		DriverID:          row.DriverID.String(),
		CurrentBalance:    row.CurrentBalance,
		TodayCollections:  row.TodayCollections,
		PendingSettlement: row.PendingSettlement,
	})
}

// Settle handles POST /settlements. Replays with the same settlement id
// return the original result.
func (s *Server) Settle(ctx echo.Context) error {
	var req SettleRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	settlementID, err := kernel.UUIDFromString(req.SettlementID)
	if err != nil {
		return writeError(ctx, err)
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSettleCommand(settlementID, driverID, req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.settleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SettleResponse{
		SettlementID: result.SettlementID.String(),
		NewBalance:   result.NewBalance,
	})
}

// GetTracking handles GET /tracking/:orderId.
func (s *Server) GetTracking(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTrackingQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingResponse(snapshot))
}

// bind decodes and validates a JSON request body.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return ctx.Validate(req)
}

// pathUUID parses a UUID path parameter, reporting a validation error on
// malformed input.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
