package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// running transaction. Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer after Begin; it is a no-op once Commit has run.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CustomerRepository() CustomerRepository
	ProductRepository() ProductRepository
	CategoryRepository() CategoryRepository
	DriverRepository() DriverRepository
	AccountRepository() AccountRepository
}
