package commands

import (
	"context"
)

// PrepareOrderCommandHandler moves a confirmed order into preparation.
// Reached only through the admin surface; no ownership check applies.
type PrepareOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPrepareOrderCommandHandler creates a handler for order preparation.
func NewPrepareOrderCommandHandler(uowFactory OrderUoWFactory) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the preparation command.
func (h *PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) (OrderResponse, error) {
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

	if err = aggregate.Prepare(); err != nil {
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
