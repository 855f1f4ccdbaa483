package commands_test

import (
	"errors"
	"testing"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/domain/model/driver"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func preparingOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := pendingOrderFor(t, kernel.NewUUID())
	require.NoError(t, aggregate.Pay())
	require.NoError(t, aggregate.Prepare())
	return aggregate
}

func availableDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Carlos", "+55 11 98888-0000", driver.VehicleMotorcycle)
	require.NoError(t, err)
	return d
}

func TestShipOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := preparingOrder(t)
	assignedDriver := availableDriver(t)
	cmd, err := commands.NewShipOrderCommand(aggregate.ID(), assignedDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, assignedDriver.ID()).Return(assignedDriver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewShipOrderCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Shipped.String(), resp.Status)
	require.NotNil(t, resp.DeliveryDriverID)
	require.True(t, resp.DeliveryDriverID.IsEqual(assignedDriver.ID()))
	uow.AssertExpectations(t)
}

func TestShipOrderCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := preparingOrder(t)
	driverID := kernel.NewUUID()
	cmd, err := commands.NewShipOrderCommand(aggregate.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(nil, errors.New("no rows")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewShipOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Equal(t, order.Preparing, aggregate.Status())
	require.Nil(t, aggregate.DeliveryDriverID())
	uow.AssertExpectations(t)
}

func TestShipOrderCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrderFor(t, kernel.NewUUID()) // still pending
	assignedDriver := availableDriver(t)
	cmd, err := commands.NewShipOrderCommand(aggregate.ID(), assignedDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, assignedDriver.ID()).Return(assignedDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewShipOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
