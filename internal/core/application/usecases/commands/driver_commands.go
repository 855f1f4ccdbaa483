package commands

import (
	"context"
	"errors"
	"time"

	"deliveryapp/internal/core/domain/model/driver"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrUpdateDriverCommandIsNotConstructed = errors.New(
		"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
	)
	ErrDeleteDriverCommandIsNotConstructed = errors.New(
		"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
	)
)

// DriverResponse is the projection returned after driver mutations.
type DriverResponse struct {
	ID          kernel.UUID
	Name        string
	Phone       string
	VehicleType string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewDriverResponse projects a driver aggregate into its response shape.
func NewDriverResponse(aggregate *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		VehicleType: aggregate.VehicleType().String(),
		IsAvailable: aggregate.IsAvailable(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// CreateDriverCommand registers a delivery driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	name        string
	phone       string
	vehicleType driver.VehicleType

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
func NewCreateDriverCommand(driverID kernel.UUID, name, phone string,
	vehicleType driver.VehicleType) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return CreateDriverCommand{}, err
	}
	cmd.driverID = driverID
	cmd.name = name
	cmd.phone = phone
	cmd.vehicleType = vehicleType

	return cmd, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// UpdateDriverCommand replaces a driver's fields, including availability.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	name        string
	phone       string
	vehicleType driver.VehicleType
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to update a driver.
func NewUpdateDriverCommand(driverID kernel.UUID, name, phone string,
	vehicleType driver.VehicleType, isAvailable bool) (UpdateDriverCommand, error) {
	cmd := UpdateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}
	cmd.driverID = driverID
	cmd.name = name
	cmd.phone = phone
	cmd.vehicleType = vehicleType
	cmd.isAvailable = isAvailable

	return cmd, nil
}

func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DeleteDriverCommand removes a driver.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDriverCommand creates a command to delete a driver.
func NewDeleteDriverCommand(driverID kernel.UUID) (DeleteDriverCommand, error) {
	cmd := DeleteDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return DeleteDriverCommand{}, err
	}
	cmd.driverID = driverID

	return cmd, nil
}

func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

// DriverCommandHandler handles all driver mutations.
type DriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDriverCommandHandler creates a handler for driver operations.
func NewDriverCommandHandler(uowFactory DriverUoWFactory) DriverCommandHandler {
	return DriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleCreate registers a new driver.
func (h *DriverCommandHandler) HandleCreate(ctx context.Context, cmd CreateDriverCommand) (DriverResponse, error) {
	if err := cmd.Validate(); err != nil {
		return DriverResponse{}, err
	}

	aggregate, err := driver.NewDriver(cmd.driverID, cmd.name, cmd.phone, cmd.vehicleType)
	if err != nil {
		return DriverResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return DriverResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return DriverResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DriverResponse{}, err
	}

	return NewDriverResponse(aggregate), nil
}

// HandleUpdate replaces an existing driver's fields.
func (h *DriverCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateDriverCommand) (DriverResponse, error) {
	if err := cmd.Validate(); err != nil {
		return DriverResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DriverResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DriverRepository().Get(ctx, cmd.driverID)
	if err != nil {
		return DriverResponse{}, err
	}

	if err = aggregate.Update(cmd.name, cmd.phone, cmd.vehicleType, cmd.isAvailable); err != nil {
		return DriverResponse{}, err
	}

	if err = uow.DriverRepository().Update(ctx, aggregate); err != nil {
		return DriverResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DriverResponse{}, err
	}

	return NewDriverResponse(aggregate), nil
}

// HandleDelete removes a driver. The driver must exist.
func (h *DriverCommandHandler) HandleDelete(ctx context.Context, cmd DeleteDriverCommand) error {
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

	aggregate, err := uow.DriverRepository().Get(ctx, cmd.driverID)
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
