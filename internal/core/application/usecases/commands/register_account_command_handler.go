package commands

import (
	"context"
	"time"

	"deliveryapp/internal/core/domain/model/account"
	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
)

// AccountResponse is the projection returned after registration. Token
// issuance is the transport's concern; this carries the profile claims.
type AccountResponse struct {
	ID        kernel.UUID
	Email     string
	FullName  string
	Role      auth.Role
	CreatedAt time.Time
}

// NewAccountResponse projects an account aggregate into its response shape.
func NewAccountResponse(aggregate *account.Account) AccountResponse {
	return AccountResponse{
		ID:        aggregate.ID(),
		Email:     aggregate.Email(),
		FullName:  aggregate.FullName(),
		Role:      aggregate.Role(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// RegisterAccountCommandHandler creates user accounts. Email uniqueness is
// enforced by storage and surfaces as a conflict.
type RegisterAccountCommandHandler struct {
	uowFactory RegisterUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory RegisterUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (AccountResponse, error) {
	if err := cmd.Validate(); err != nil {
		return AccountResponse{}, err
	}

	aggregate, err := account.NewAccount(cmd.AccountID(), cmd.Email(), cmd.Password(), cmd.FullName(), cmd.Role())
	if err != nil {
		return AccountResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AccountResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, aggregate); err != nil {
		return AccountResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AccountResponse{}, err
	}

	return NewAccountResponse(aggregate), nil
}
