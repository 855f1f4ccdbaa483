package ports

import (
	"context"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored
	// row's version must match the aggregate's loaded version; a mismatch
	// means a concurrent writer won and the update fails with a conflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPendingStatus retrieves orders that are still awaiting
	// payment. Used by the stale order watchdog.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order and its items from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
