package commands

import (
	"errors"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/guard"
)

var ErrPrepareOrderCommandIsNotConstructed = errors.New(
	"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
)

// PrepareOrderCommand represents a kitchen-side request to start preparing
// a confirmed order.
type PrepareOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPrepareOrderCommand creates a command to start order preparation.
func NewPrepareOrderCommand(orderID kernel.UUID) (PrepareOrderCommand, error) {
	orderCommand := PrepareOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return PrepareOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}

func (c PrepareOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PrepareOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
