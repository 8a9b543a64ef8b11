package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tracking"
)

// CreateOrderCommandHandler handles order registration. New orders enter in
// pending status and wait for the batch builder to pick them up.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle validates the request, builds the order aggregate and persists it
// together with its first tracking event.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := order.NewCustomer(cmd.CustomerName(), cmd.Phone(), cmd.Address(), cmd.Pincode())
	if err != nil {
		return err
	}

	location, err := kernel.NewGeoPoint(cmd.Lat(), cmd.Lng())
	if err != nil {
		return err
	}

	method, err := order.PaymentMethodFromString(cmd.PaymentMethod())
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, err := order.NewItem(spec.Name, spec.Quantity, spec.Price, spec.Weight)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	now := time.Now()
	aggregate, err := order.NewOrder(cmd.OrderID(), customer, location, items,
		cmd.TotalWeight(), cmd.TotalAmount(), method, cmd.DeliverySlot(), now)
	if err != nil {
		return err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), aggregate.ID(), aggregate.Status(),
		nil, "order placed", now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
