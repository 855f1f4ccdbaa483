// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction and hands out
// repositories bound to that transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op, so deferring it right after
// Begin is the expected pattern. Each instance carries its own transaction
// state; concurrent operations must use separate instances.
package postgres

import (
	"context"

	"deliveryapp/internal/adapters/out/postgres/accountrepo"
	"deliveryapp/internal/adapters/out/postgres/categoryrepo"
	"deliveryapp/internal/adapters/out/postgres/customerrepo"
	"deliveryapp/internal/adapters/out/postgres/driverrepo"
	"deliveryapp/internal/adapters/out/postgres/orderrepo"
	"deliveryapp/internal/adapters/out/postgres/productrepo"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like event sourcing or outbox later.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh instance with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks aggregate
// changes for one business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// A no-op when no transaction is active, so it is safe to defer
// unconditionally right after Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction if one is open, otherwise the main
// connection for immediate execution.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository provides order persistence bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CustomerRepository provides customer persistence bound to the current transaction.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// ProductRepository provides product persistence bound to the current transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// CategoryRepository provides category persistence bound to the current transaction.
func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	return categoryrepo.NewGormCategoryRepository(uow.conn(), uow)
}

// DriverRepository provides driver persistence bound to the current transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

// AccountRepository provides account persistence bound to the current transaction.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it when aggregates are added or
// updated; the collected list enables post-commit processing such as domain
// event publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
