package commands

import (
	"context"

	"deliveryapp/internal/core/domain/services"
)

// PayOrderCommandHandler confirms payment for a pending order.
// Only the order's owner (or an admin) may pay; the transition itself is
// guarded by the status machine.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPayOrderCommandHandler creates a handler for order payment.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (OrderResponse, error) {
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

	if err = aggregate.Pay(); err != nil {
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
