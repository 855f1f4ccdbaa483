package commands

import (
	"context"
	"errors"
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/product"
	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrSetProductAvailabilityCommandIsNotConstructed = errors.New(
		"SetProductAvailabilityCommand must be created via NewSetProductAvailabilityCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// ProductResponse is the projection returned after product mutations.
type ProductResponse struct {
	ID          kernel.UUID
	CategoryID  kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewProductResponse projects a product aggregate into its response shape.
func NewProductResponse(aggregate *product.Product) ProductResponse {
	return ProductResponse{
		ID:          aggregate.ID(),
		CategoryID:  aggregate.CategoryID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		ImageURL:    aggregate.ImageURL(),
		IsActive:    aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// CreateProductCommand adds a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	categoryID  kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
func NewCreateProductCommand(productID, categoryID kernel.UUID,
	name, description string, price decimal.Decimal, imageURL string) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(productID.Validate(), categoryID.Validate()); err != nil {
		return CreateProductCommand{}, err
	}
	cmd.productID = productID
	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description
	cmd.price = price
	cmd.imageURL = imageURL

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// UpdateProductCommand replaces a product's catalog fields.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	categoryID  kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	imageURL    string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(productID, categoryID kernel.UUID,
	name, description string, price decimal.Decimal, imageURL string) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(productID.Validate(), categoryID.Validate()); err != nil {
		return UpdateProductCommand{}, err
	}
	cmd.productID = productID
	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description
	cmd.price = price
	cmd.imageURL = imageURL

	return cmd, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// SetProductAvailabilityCommand activates or deactivates a product.
type SetProductAvailabilityCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	isActive  bool

	guard guard.ConstructorGuard
}

// NewSetProductAvailabilityCommand creates a command to flip a product's
// availability flag.
func NewSetProductAvailabilityCommand(productID kernel.UUID, isActive bool) (SetProductAvailabilityCommand, error) {
	cmd := SetProductAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := productID.Validate(); err != nil {
		return SetProductAvailabilityCommand{}, err
	}
	cmd.productID = productID
	cmd.isActive = isActive

	return cmd, nil
}

func (c SetProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetProductAvailabilityCommandIsNotConstructed)
}

// DeleteProductCommand removes a product from the catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to delete a catalog product.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	cmd := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}
	cmd.productID = productID

	return cmd, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductCommandHandler handles all catalog product mutations.
type ProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewProductCommandHandler creates a handler for catalog product operations.
func NewProductCommandHandler(uowFactory ProductUoWFactory) ProductCommandHandler {
	return ProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleCreate adds a product after verifying its category exists.
func (h *ProductCommandHandler) HandleCreate(ctx context.Context, cmd CreateProductCommand) (ProductResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ProductResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProductResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CategoryRepository().Get(ctx, cmd.categoryID); err != nil {
		return ProductResponse{}, errs.NewObjectNotFoundErrorWithCause("Category", cmd.categoryID, err)
	}

	aggregate, err := product.NewProduct(cmd.productID, cmd.categoryID,
		cmd.name, cmd.description, cmd.price, cmd.imageURL)
	if err != nil {
		return ProductResponse{}, err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return ProductResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProductResponse{}, err
	}

	return NewProductResponse(aggregate), nil
}

// HandleUpdate replaces a product's fields, re-verifying the category when
// it changes.
func (h *ProductCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateProductCommand) (ProductResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ProductResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProductResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ProductRepository().Get(ctx, cmd.productID)
	if err != nil {
		return ProductResponse{}, err
	}

	if !aggregate.CategoryID().IsEqual(cmd.categoryID) {
		if _, catErr := uow.CategoryRepository().Get(ctx, cmd.categoryID); catErr != nil {
			return ProductResponse{}, errs.NewObjectNotFoundErrorWithCause("Category", cmd.categoryID, catErr)
		}
	}

	if err = aggregate.Update(cmd.categoryID, cmd.name, cmd.description, cmd.price, cmd.imageURL); err != nil {
		return ProductResponse{}, err
	}

	if err = uow.ProductRepository().Update(ctx, aggregate); err != nil {
		return ProductResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProductResponse{}, err
	}

	return NewProductResponse(aggregate), nil
}

// HandleSetAvailability flips the availability flag.
func (h *ProductCommandHandler) HandleSetAvailability(
	ctx context.Context,
	cmd SetProductAvailabilityCommand,
) (ProductResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ProductResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProductResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ProductRepository().Get(ctx, cmd.productID)
	if err != nil {
		return ProductResponse{}, err
	}

	if cmd.isActive {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = uow.ProductRepository().Update(ctx, aggregate); err != nil {
		return ProductResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProductResponse{}, err
	}

	return NewProductResponse(aggregate), nil
}

// HandleDelete removes a product. The product must exist.
func (h *ProductCommandHandler) HandleDelete(ctx context.Context, cmd DeleteProductCommand) error {
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

	aggregate, err := uow.ProductRepository().Get(ctx, cmd.productID)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
