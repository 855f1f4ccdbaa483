package commands_test

import (
	"context"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/domain/model/account"
	"deliveryapp/internal/core/domain/model/category"
	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/driver"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/core/domain/model/product"
	"deliveryapp/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllByCategory(ctx context.Context, categoryID kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

// MockUoW satisfies every narrow UoW interface the handlers depend on, so
// a single mock type covers the whole command surface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockShipOrderUoWFactory struct{ mock.Mock }

func (m *MockShipOrderUoWFactory) Create() commands.ShipOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipOrderUoW)
}

type MockRegisterUoWFactory struct{ mock.Mock }

func (m *MockRegisterUoWFactory) Create() commands.RegisterUoW {
	args := m.Called()
	return args.Get(0).(commands.RegisterUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}
