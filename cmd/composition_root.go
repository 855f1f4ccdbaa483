package cmd

import (
	"log/slog"

	httpin "deliveryapp/internal/adapters/in/http"
	"deliveryapp/internal/adapters/out/postgres"
	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/application/usecases/queries"
	"deliveryapp/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All construction
// happens here so the rest of the code never references concrete adapters.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// NewTokenService builds the JWT service from config.
func (c *CompositionRoot) NewTokenService(configs Config) (*httpin.TokenService, error) {
	return httpin.NewTokenService([]byte(configs.JWTSigningKey),
		configs.JWTIssuer, configs.JWTAudience, configs.JWTTokenTTL)
}

// NewJobManager builds the background job manager. Jobs read outside any
// unit of work, so they get a repository bound to the main connection.
func (c *CompositionRoot) NewJobManager(configs Config, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory.Create().OrderRepository(),
		configs.StaleOrderThreshold, logger)
}

// NewServerParams assembles every handler the HTTP server needs.
func (c *CompositionRoot) NewServerParams(tokens *httpin.TokenService) httpin.ServerParams {
	return httpin.ServerParams{
		Tokens: tokens,

		RegisterAccountHandler: c.CreateRegisterAccountCommandHandler(),
		CreateOrderHandler:     c.CreateCreateOrderCommandHandler(),
		PayOrderHandler:        c.CreatePayOrderCommandHandler(),
		PrepareOrderHandler:    c.CreatePrepareOrderCommandHandler(),
		ShipOrderHandler:       c.CreateShipOrderCommandHandler(),
		DeliverOrderHandler:    c.CreateDeliverOrderCommandHandler(),
		CancelOrderHandler:     c.CreateCancelOrderCommandHandler(),
		DeleteOrderHandler:     c.CreateDeleteOrderCommandHandler(),
		CustomerHandler:        c.CreateCustomerCommandHandler(),
		ProductHandler:         c.CreateProductCommandHandler(),
		CategoryHandler:        c.CreateCategoryCommandHandler(),
		DriverHandler:          c.CreateDriverCommandHandler(),

		LoginHandler:               queries.NewLoginQueryHandler(c.gormDB),
		GetOrderByIDHandler:        queries.NewGetOrderByIDQueryHandler(c.gormDB),
		GetOrdersByCustomerHandler: queries.NewGetOrdersByCustomerQueryHandler(c.gormDB),
		GetAllOrdersHandler:        queries.NewGetAllOrdersQueryHandler(c.gormDB),
		GetCustomerByIDHandler:     queries.NewGetCustomerByIDQueryHandler(c.gormDB),
		GetAllCustomersHandler:     queries.NewGetAllCustomersQueryHandler(c.gormDB),
		GetProductByIDHandler:      queries.NewGetProductByIDQueryHandler(c.gormDB),
		GetAllProductsHandler:      queries.NewGetAllProductsQueryHandler(c.gormDB),
		GetCategoryByIDHandler:     queries.NewGetCategoryByIDQueryHandler(c.gormDB),
		GetAllCategoriesHandler:    queries.NewGetAllCategoriesQueryHandler(c.gormDB),
		GetDriverByIDHandler:       queries.NewGetDriverByIDQueryHandler(c.gormDB),
		GetAllDriversHandler:       queries.NewGetAllDriversQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.RegisterUoWFactory = FuncRegisterUoWFactory(func() commands.RegisterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePrepareOrderCommandHandler() commands.PrepareOrderCommandHandler {
	return commands.NewPrepareOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	var f commands.ShipOrderUoWFactory = FuncShipOrderUoWFactory(func() commands.ShipOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCustomerCommandHandler() commands.CustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateProductCommandHandler() commands.ProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCategoryCommandHandler() commands.CategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateDriverCommandHandler() commands.DriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDriverCommandHandler(f)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// Func adapters narrow the wide unit of work factory down to the shapes the
// command handlers declare.

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncShipOrderUoWFactory func() commands.ShipOrderUoW

func (f FuncShipOrderUoWFactory) Create() commands.ShipOrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRegisterUoWFactory func() commands.RegisterUoW

func (f FuncRegisterUoWFactory) Create() commands.RegisterUoW {
	return f()
}
