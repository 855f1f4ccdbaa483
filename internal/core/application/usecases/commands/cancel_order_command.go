package commands

import (
	"errors"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order that has not
// been delivered yet.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  auth.Caller

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID, caller auth.Caller) (CancelOrderCommand, error) {
	orderCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCaller(caller),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) Caller() auth.Caller {
	return c.caller
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setCaller(caller auth.Caller) error {
	if !caller.IsAuthenticated() {
		return errs.NewUnauthorizedError("authentication required")
	}

	c.caller = caller
	return nil
}
