package commands

import (
	"context"
	"errors"
	"time"

	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/guard"
)

// Customer CRUD is an administrative surface: profiles are created for
// registered user accounts and linked to them through userID. The commands
// here share one file since each is a thin wrapper over the aggregate.

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
	)
	ErrDeleteCustomerCommandIsNotConstructed = errors.New(
		"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
	)
)

// CustomerResponse is the projection returned after customer mutations.
type CustomerResponse struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewCustomerResponse projects a customer aggregate into its response shape.
func NewCustomerResponse(aggregate *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        aggregate.ID(),
		UserID:    aggregate.UserID(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// CreateCustomerCommand creates a customer profile for a user account.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	userID     kernel.UUID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer profile.
// Field validation is delegated to the aggregate constructor; the command
// only pins identifiers.
func NewCreateCustomerCommand(customerID, userID kernel.UUID,
	name, email, phone, address string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(customerID.Validate(), userID.Validate()); err != nil {
		return CreateCustomerCommand{}, err
	}
	cmd.customerID = customerID
	cmd.userID = userID
	cmd.name = name
	cmd.email = email
	cmd.phone = phone
	cmd.address = address

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// UpdateCustomerCommand replaces a customer profile's mutable fields.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer profile.
func NewUpdateCustomerCommand(customerID kernel.UUID,
	name, email, phone, address string) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}
	cmd.customerID = customerID
	cmd.name = name
	cmd.email = email
	cmd.phone = phone
	cmd.address = address

	return cmd, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// DeleteCustomerCommand removes a customer profile.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates a command to delete a customer profile.
func NewDeleteCustomerCommand(customerID kernel.UUID) (DeleteCustomerCommand, error) {
	cmd := DeleteCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return DeleteCustomerCommand{}, err
	}
	cmd.customerID = customerID

	return cmd, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerCommandHandler handles all customer profile mutations.
type CustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCustomerCommandHandler creates a handler for customer profile operations.
func NewCustomerCommandHandler(uowFactory CustomerUoWFactory) CustomerCommandHandler {
	return CustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleCreate registers a new customer profile. Duplicate emails surface
// as conflicts from storage.
func (h *CustomerCommandHandler) HandleCreate(ctx context.Context, cmd CreateCustomerCommand) (CustomerResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	aggregate, err := customer.NewCustomer(cmd.customerID, cmd.userID,
		cmd.name, cmd.email, cmd.phone, cmd.address)
	if err != nil {
		return CustomerResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CustomerResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return CustomerResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CustomerResponse{}, err
	}

	return NewCustomerResponse(aggregate), nil
}

// HandleUpdate replaces an existing profile's fields.
func (h *CustomerCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateCustomerCommand) (CustomerResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CustomerResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.CustomerRepository().Get(ctx, cmd.customerID)
	if err != nil {
		return CustomerResponse{}, err
	}

	if err = aggregate.Update(cmd.name, cmd.email, cmd.phone, cmd.address); err != nil {
		return CustomerResponse{}, err
	}

	if err = uow.CustomerRepository().Update(ctx, aggregate); err != nil {
		return CustomerResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CustomerResponse{}, err
	}

	return NewCustomerResponse(aggregate), nil
}

// HandleDelete removes a profile. The profile must exist.
func (h *CustomerCommandHandler) HandleDelete(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.CustomerRepository().Get(ctx, cmd.customerID)
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
