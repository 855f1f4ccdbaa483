package commands

import (
	"errors"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a request to hand a prepared order to a
// delivery driver.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order with a driver.
func NewShipOrderCommand(orderID kernel.UUID, driverID kernel.UUID) (ShipOrderCommand, error) {
	orderCommand := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDriverID(driverID),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ShipOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
