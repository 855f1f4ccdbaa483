package commands

import (
	"context"
	"errors"
	"time"

	"deliveryapp/internal/core/domain/model/category"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
	ErrUpdateCategoryCommandIsNotConstructed = errors.New(
		"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
	)
	ErrDeleteCategoryCommandIsNotConstructed = errors.New(
		"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
	)
)

// CategoryResponse is the projection returned after category mutations.
type CategoryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewCategoryResponse projects a category aggregate into its response shape.
func NewCategoryResponse(aggregate *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// CreateCategoryCommand adds a product category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a category.
func NewCreateCategoryCommand(categoryID kernel.UUID, name, description string) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := categoryID.Validate(); err != nil {
		return CreateCategoryCommand{}, err
	}
	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description

	return cmd, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// UpdateCategoryCommand replaces a category's name and description.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateCategoryCommand creates a command to update a category.
func NewUpdateCategoryCommand(categoryID kernel.UUID, name, description string) (UpdateCategoryCommand, error) {
	cmd := UpdateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := categoryID.Validate(); err != nil {
		return UpdateCategoryCommand{}, err
	}
	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description

	return cmd, nil
}

func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

// DeleteCategoryCommand removes a category.
type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCategoryCommand creates a command to delete a category.
func NewDeleteCategoryCommand(categoryID kernel.UUID) (DeleteCategoryCommand, error) {
	cmd := DeleteCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := categoryID.Validate(); err != nil {
		return DeleteCategoryCommand{}, err
	}
	cmd.categoryID = categoryID

	return cmd, nil
}

func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

// CategoryCommandHandler handles all category mutations.
type CategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewCategoryCommandHandler creates a handler for category operations.
func NewCategoryCommandHandler(uowFactory CategoryUoWFactory) CategoryCommandHandler {
	return CategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleCreate adds a new category.
func (h *CategoryCommandHandler) HandleCreate(ctx context.Context, cmd CreateCategoryCommand) (CategoryResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CategoryResponse{}, err
	}

	aggregate, err := category.NewCategory(cmd.categoryID, cmd.name, cmd.description)
	if err != nil {
		return CategoryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CategoryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, aggregate); err != nil {
		return CategoryResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CategoryResponse{}, err
	}

	return NewCategoryResponse(aggregate), nil
}

// HandleUpdate replaces an existing category's fields.
func (h *CategoryCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateCategoryCommand) (CategoryResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CategoryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CategoryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.CategoryRepository().Get(ctx, cmd.categoryID)
	if err != nil {
		return CategoryResponse{}, err
	}

	if err = aggregate.Update(cmd.name, cmd.description); err != nil {
		return CategoryResponse{}, err
	}

	if err = uow.CategoryRepository().Update(ctx, aggregate); err != nil {
		return CategoryResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CategoryResponse{}, err
	}

	return NewCategoryResponse(aggregate), nil
}

// HandleDelete removes a category. The category must exist.
func (h *CategoryCommandHandler) HandleDelete(ctx context.Context, cmd DeleteCategoryCommand) error {
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

	aggregate, err := uow.CategoryRepository().Get(ctx, cmd.categoryID)
	if err != nil {
		return err
	}

	if err = uow.CategoryRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
