package commands

import (
	"errors"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested line of a new order. Prices are not
// client-supplied: the handler snapshots them from the catalog.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a customer's request to place a new order.
// The caller's customer profile becomes the order owner.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	caller          auth.Caller
	deliveryAddress string
	items           []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	caller auth.Caller,
	deliveryAddress string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCaller(caller),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Caller() auth.Caller {
	return c.caller
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCaller(caller auth.Caller) error {
	if !caller.IsAuthenticated() {
		return errs.NewUnauthorizedError("authentication required")
	}

	c.caller = caller
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredError("productId")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.items = items
	return nil
}
