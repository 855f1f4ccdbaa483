package ports

import (
	"context"

	"deliveryapp/internal/core/domain/model/driver"
	"deliveryapp/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for delivery drivers.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
	GetAll(ctx context.Context) ([]*driver.Driver, error)
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
