package commands

import (
	"context"

	"deliveryapp/internal/pkg/errs"
)

// ShipOrderCommandHandler hands a prepared order to a delivery driver.
// The driver must exist; the aggregate guards the status and records the
// assignment.
type ShipOrderCommandHandler struct {
	uowFactory ShipOrderUoWFactory
}

// NewShipOrderCommandHandler creates a handler for order shipping.
func NewShipOrderCommandHandler(uowFactory ShipOrderUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipping command.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (OrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	assignedDriver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return OrderResponse{}, errs.NewObjectNotFoundErrorWithCause("DeliveryDriver", cmd.DriverID(), err)
	}

	if err = aggregate.Ship(assignedDriver.ID()); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(aggregate), nil
}
