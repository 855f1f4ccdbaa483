package commands

import (
	"context"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/core/domain/model/product"
	"deliveryapp/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the caller's customer profile, snapshots catalog prices for every
// requested line, and creates the order in Pending status.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. Pricing happens inside the
// transaction so a concurrent catalog update cannot split an order between
// old and new prices.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (OrderResponse, error) {
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

	owner, err := uow.CustomerRepository().GetByUserID(ctx, cmd.Caller().UserID())
	if err != nil {
		return OrderResponse{}, errs.NewObjectNotFoundErrorWithCause("Customer", cmd.Caller().UserID(), err)
	}

	items, err := h.priceItems(ctx, uow, cmd.Items())
	if err != nil {
		return OrderResponse{}, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), owner.ID(), cmd.DeliveryAddress(), items)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(newOrder), nil
}

func (h *CreateOrderCommandHandler) priceItems(
	ctx context.Context,
	uow CreateOrderUoW,
	inputs []OrderItemInput,
) ([]order.Item, error) {
	ids := make([]kernel.UUID, 0, len(inputs))
	for _, input := range inputs {
		ids = append(ids, input.ProductID)
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		p, ok := byID[input.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("Product", input.ProductID)
		}
		if !p.IsActive() {
			return nil, errs.NewValueIsInvalidError("productId")
		}

		item, itemErr := order.NewItem(p.ID(), input.Quantity, p.Price())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}
