package commands

import (
	"context"
)

// DeliverOrderCommandHandler completes a shipped order.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (OrderResponse, error) {
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

	if err = aggregate.Deliver(); err != nil {
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
