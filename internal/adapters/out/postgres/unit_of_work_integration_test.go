package postgres_test

import (
	"context"
	"testing"

	postgresadapter "deliveryapp/internal/adapters/out/postgres"
	"deliveryapp/internal/adapters/out/postgres/customerrepo"
	"deliveryapp/internal/adapters/out/postgres/orderrepo"
	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &customerrepo.CustomerDTO{})
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, customers").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestFactory_Create verifies the factory produces isolated instances that
// each hand out the full set of repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.CategoryRepository())
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.AccountRepository())
}

// TestTransactionLifecycle verifies begin, commit and deferred rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "repeated begin should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "rollback after commit should be a no-op")

	err = uow.Commit(ctx)
	suite.Require().Error(err, "commit without active transaction should fail")
}

// TestCommit_PersistsAcrossRepositories verifies changes made through several
// repositories of one unit of work land atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	profile := suite.createTestCustomer()
	testOrder := suite.createTestOrder(profile.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, profile))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&customerrepo.CustomerDTO{}, 1)
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.ItemDTO{}, 1)
}

// TestRollback_DiscardsChanges verifies nothing leaks out of a rolled back
// transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	profile := suite.createTestCustomer()
	testOrder := suite.createTestOrder(profile.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, profile))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&customerrepo.CustomerDTO{}, 0)
	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertCount(&orderrepo.ItemDTO{}, 0)
}

// TestRepositories_WithoutTransaction verifies repositories execute
// immediately against the main connection when no transaction is open.
func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	profile := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, profile))

	suite.assertCount(&customerrepo.CustomerDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCustomer() *customer.Customer {
	profile, err := customer.NewCustomer(kernel.NewUUID(), kernel.NewUUID(),
		"Ada Lovelace", "ada@example.com", "+4000000001", "12 Analytical Lane")
	suite.Require().NoError(err)
	return profile
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(customerID kernel.UUID) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), 1, decimal.NewFromFloat(12.00))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), customerID, "42 Baker Street", []order.Item{item})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
