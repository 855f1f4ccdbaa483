// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, transaction
// management, and persistence.
package commands

import (
	"context"

	"deliveryapp/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrowest UoW shape it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Pay, prepare, deliver, cancel and delete touch only the order
	// aggregate but need the customer repository for ownership checks.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW adds the product repository so order creation can
	// snapshot prices inside the same transaction.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		ProductRepoFactory
	}

	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ShipOrderUoW adds the driver repository so shipping can verify the
	// assigned driver exists.
	ShipOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		DriverRepoFactory
	}

	ShipOrderUoWFactory interface {
		Create() ShipOrderUoW
	}

	// CustomerUoW manages transactions for customer profile operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW manages transactions for catalog product operations.
	// The category repository is used to verify the target category exists.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		CategoryRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CategoryUoW manages transactions for category operations.
	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// DriverUoW manages transactions for driver operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RegisterUoW manages transactions for account registration.
	RegisterUoW interface {
		TxManager
		AccountRepoFactory
	}

	RegisterUoWFactory interface {
		Create() RegisterUoW
	}
)
