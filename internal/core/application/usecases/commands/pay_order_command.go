package commands

import (
	"errors"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to pay for a pending order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  auth.Caller

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay for an order.
func NewPayOrderCommand(orderID kernel.UUID, caller auth.Caller) (PayOrderCommand, error) {
	orderCommand := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCaller(caller),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PayOrderCommand) Caller() auth.Caller {
	return c.caller
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setCaller(caller auth.Caller) error {
	if !caller.IsAuthenticated() {
		return errs.NewUnauthorizedError("authentication required")
	}

	c.caller = caller
	return nil
}
