package ports

import (
	"context"

	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer profiles.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByUserID retrieves the customer profile owned by a user account.
	// Access checks use it to map token subjects to customer ids.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*customer.Customer, error)

	GetAll(ctx context.Context) ([]*customer.Customer, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
