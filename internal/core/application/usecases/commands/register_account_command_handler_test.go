package commands_test

import (
	"errors"
	"testing"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(),
		"maria@example.com", "secret1", "Maria Silva", "Customer")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "maria@example.com", resp.Email)
	require.Equal(t, auth.RoleCustomer, resp.Role)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterAccountCommandHandler_Handle_UnknownRoleDefaultsToCustomer(t *testing.T) {
	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(),
		"maria@example.com", "secret1", "Maria Silva", "SuperUser")

	require.NoError(t, err)
	require.Equal(t, auth.RoleCustomer, cmd.Role())
}

func TestRegisterAccountCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(),
		"maria@example.com", "secret1", "Maria Silva", "Admin")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).
			Return(errors.New("duplicate key value violates unique constraint")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
