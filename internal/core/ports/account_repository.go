package ports

import (
	"context"

	"deliveryapp/internal/core/domain/model/account"
	"deliveryapp/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	// Add persists a new account. Emails are unique; inserting a
	// duplicate fails with a conflict.
	Add(ctx context.Context, aggregate *account.Account) error

	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
