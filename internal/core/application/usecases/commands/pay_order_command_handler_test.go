package commands_test

import (
	"testing"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrderFor(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, decimal.RequireFromString("25.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, "Rua A, 123", []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestPayOrderCommandHandler_Handle_OwnerPays(t *testing.T) {
	ctx := t.Context()
	caller, owner := customerCaller(t)
	aggregate := pendingOrderFor(t, owner.ID())
	cmd, err := commands.NewPayOrderCommand(aggregate.ID(), caller)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByUserID", ctx, caller.UserID()).Return(owner, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Confirmed.String(), resp.Status)
	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_ForeignOrderForbidden(t *testing.T) {
	ctx := t.Context()
	caller, owner := customerCaller(t)
	aggregate := pendingOrderFor(t, kernel.NewUUID()) // someone else's order
	cmd, err := commands.NewPayOrderCommand(aggregate.ID(), caller)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByUserID", ctx, caller.UserID()).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	require.Equal(t, order.Pending, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_AdminSkipsOwnership(t *testing.T) {
	ctx := t.Context()
	admin, err := auth.NewCaller(kernel.NewUUID(), auth.RoleAdmin)
	require.NoError(t, err)
	aggregate := pendingOrderFor(t, kernel.NewUUID())
	cmd, err := commands.NewPayOrderCommand(aggregate.ID(), admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Confirmed.String(), resp.Status)
	customerRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	caller, owner := customerCaller(t)
	aggregate := pendingOrderFor(t, owner.ID())
	require.NoError(t, aggregate.Pay()) // already confirmed
	cmd, err := commands.NewPayOrderCommand(aggregate.ID(), caller)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByUserID", ctx, caller.UserID()).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
