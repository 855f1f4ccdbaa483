package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"deliveryapp/internal/adapters/out/postgres/orderrepo"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsOrderAndLines() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.DeliveryAddress(), retrieved.DeliveryAddress())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.DeliveryDriverID())
	suite.Len(retrieved.Items(), 2)
	suite.True(original.TotalAmount().Equal(retrieved.TotalAmount()),
		"expected total %s, got %s", original.TotalAmount(), retrieved.TotalAmount())
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Equal("Order", notFoundErr.ParamName)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MatchingVersion_IncrementsVersion() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Pay())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.NotNil(retrieved.UpdatedAt())
	suite.Equal(2, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First writer wins and bumps the stored version to 2.
	firstWriter, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(firstWriter.Pay())
	suite.Require().NoError(suite.repository.Update(ctx, firstWriter))

	// Second writer still holds version 1 and must be rejected.
	suite.Require().NoError(testOrder.Pay())
	err = suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPendingStatus_ReturnsOnlyPendingOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	pending1 := suite.createTestOrder()
	pending2 := suite.createTestOrder()
	paid := suite.createTestOrder()
	suite.Require().NoError(paid.Pay())

	for _, o := range []*order.Order{pending1, pending2, paid} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	pendingOrders, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Len(pendingOrders, 2)
	for _, o := range pendingOrders {
		suite.Equal(order.Pending, o.Status())
		suite.NotEmpty(o.Items())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_ExistingOrder_RemovesOrderAndLines() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	suite.assertOrderCount(0)
	suite.assertItemCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a pending two-line order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	burger, err := order.NewItem(kernel.NewUUID(), 2, decimal.NewFromFloat(9.50))
	suite.Require().NoError(err)
	fries, err := order.NewItem(kernel.NewUUID(), 1, decimal.NewFromFloat(3.25))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"42 Baker Street", []order.Item{burger, fries})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
