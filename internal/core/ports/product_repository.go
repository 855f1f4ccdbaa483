package ports

import (
	"context"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves products for the given ids in one round trip.
	// Order creation uses it to price all requested lines at once; missing
	// ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	GetAll(ctx context.Context) ([]*product.Product, error)
	GetAllByCategory(ctx context.Context, categoryID kernel.UUID) ([]*product.Product, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
