package ports

import (
	"context"

	"deliveryapp/internal/core/domain/model/category"
	"deliveryapp/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for product categories.
type CategoryRepository interface {
	Add(ctx context.Context, aggregate *category.Category) error
	Update(ctx context.Context, aggregate *category.Category) error
	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)
	GetAll(ctx context.Context) ([]*category.Category, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
