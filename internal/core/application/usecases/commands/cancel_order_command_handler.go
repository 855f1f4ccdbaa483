package commands

import (
	"context"

	"deliveryapp/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an undelivered order. Any authenticated
// caller may try; the access policy restricts customers to their own orders
// and the status machine rejects terminal states.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (OrderResponse, error) {
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

	policy, err := services.NewOrderAccessPolicy(uow.CustomerRepository())
	if err != nil {
		return OrderResponse{}, err
	}
	if err = policy.CanAccessOrder(ctx, cmd.Caller(), aggregate); err != nil {
		return OrderResponse{}, err
	}

	if err = aggregate.Cancel(); err != nil {
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
