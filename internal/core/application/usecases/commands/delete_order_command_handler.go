package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes an order and its items. The order must
// exist so callers get NotFound rather than a silent no-op.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
