package commands

import (
	"errors"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents confirmation that a shipped order reached
// the customer.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to mark an order delivered.
func NewDeliverOrderCommand(orderID kernel.UUID) (DeliverOrderCommand, error) {
	orderCommand := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return DeliverOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
