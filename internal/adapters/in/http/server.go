// Package http is the inbound REST adapter. It binds requests into commands
// and queries, resolves the caller from the access token and maps domain
// errors onto status codes. No business rules live here; handlers only guard
// the role boundaries that are purely transport concerns.
package http

import (
	"net/http"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokens *TokenService

	// Command handlers
	registerAccountHandler commands.RegisterAccountCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	payOrderHandler        commands.PayOrderCommandHandler
	prepareOrderHandler    commands.PrepareOrderCommandHandler
	shipOrderHandler       commands.ShipOrderCommandHandler
	deliverOrderHandler    commands.DeliverOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler
	customerHandler        commands.CustomerCommandHandler
	productHandler         commands.ProductCommandHandler
	categoryHandler        commands.CategoryCommandHandler
	driverHandler          commands.DriverCommandHandler

	// Query handlers
	loginHandler               queries.LoginQueryHandler
	getOrderByIDHandler        queries.GetOrderByIDQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getCustomerByIDHandler     queries.GetCustomerByIDQueryHandler
	getAllCustomersHandler     queries.GetAllCustomersQueryHandler
	getProductByIDHandler      queries.GetProductByIDQueryHandler
	getAllProductsHandler      queries.GetAllProductsQueryHandler
	getCategoryByIDHandler     queries.GetCategoryByIDQueryHandler
	getAllCategoriesHandler    queries.GetAllCategoriesQueryHandler
	getDriverByIDHandler       queries.GetDriverByIDQueryHandler
	getAllDriversHandler       queries.GetAllDriversQueryHandler
}

// ServerParams bundles everything the server needs. A struct keeps the
// composition root readable; every field is required.
type ServerParams struct {
	Tokens *TokenService

	RegisterAccountHandler commands.RegisterAccountCommandHandler
	CreateOrderHandler     commands.CreateOrderCommandHandler
	PayOrderHandler        commands.PayOrderCommandHandler
	PrepareOrderHandler    commands.PrepareOrderCommandHandler
	ShipOrderHandler       commands.ShipOrderCommandHandler
	DeliverOrderHandler    commands.DeliverOrderCommandHandler
	CancelOrderHandler     commands.CancelOrderCommandHandler
	DeleteOrderHandler     commands.DeleteOrderCommandHandler
	CustomerHandler        commands.CustomerCommandHandler
	ProductHandler         commands.ProductCommandHandler
	CategoryHandler        commands.CategoryCommandHandler
	DriverHandler          commands.DriverCommandHandler

	LoginHandler               queries.LoginQueryHandler
	GetOrderByIDHandler        queries.GetOrderByIDQueryHandler
	GetOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
	GetAllOrdersHandler        queries.GetAllOrdersQueryHandler
	GetCustomerByIDHandler     queries.GetCustomerByIDQueryHandler
	GetAllCustomersHandler     queries.GetAllCustomersQueryHandler
	GetProductByIDHandler      queries.GetProductByIDQueryHandler
	GetAllProductsHandler      queries.GetAllProductsQueryHandler
	GetCategoryByIDHandler     queries.GetCategoryByIDQueryHandler
	GetAllCategoriesHandler    queries.GetAllCategoriesQueryHandler
	GetDriverByIDHandler       queries.GetDriverByIDQueryHandler
	GetAllDriversHandler       queries.GetAllDriversQueryHandler
}

// NewServer creates the HTTP server facade.
func NewServer(params ServerParams) *Server {
	return &Server{
		tokens:                     params.Tokens,
		registerAccountHandler:     params.RegisterAccountHandler,
		createOrderHandler:         params.CreateOrderHandler,
		payOrderHandler:            params.PayOrderHandler,
		prepareOrderHandler:        params.PrepareOrderHandler,
		shipOrderHandler:           params.ShipOrderHandler,
		deliverOrderHandler:        params.DeliverOrderHandler,
		cancelOrderHandler:         params.CancelOrderHandler,
		deleteOrderHandler:         params.DeleteOrderHandler,
		customerHandler:            params.CustomerHandler,
		productHandler:             params.ProductHandler,
		categoryHandler:            params.CategoryHandler,
		driverHandler:              params.DriverHandler,
		loginHandler:               params.LoginHandler,
		getOrderByIDHandler:        params.GetOrderByIDHandler,
		getOrdersByCustomerHandler: params.GetOrdersByCustomerHandler,
		getAllOrdersHandler:        params.GetAllOrdersHandler,
		getCustomerByIDHandler:     params.GetCustomerByIDHandler,
		getAllCustomersHandler:     params.GetAllCustomersHandler,
		getProductByIDHandler:      params.GetProductByIDHandler,
		getAllProductsHandler:      params.GetAllProductsHandler,
		getCategoryByIDHandler:     params.GetCategoryByIDHandler,
		getAllCategoriesHandler:    params.GetAllCategoriesHandler,
		getDriverByIDHandler:       params.GetDriverByIDHandler,
		getAllDriversHandler:       params.GetAllDriversHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api", Authenticate(s.tokens))

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)

	customers := api.Group("/customers", RequireAdmin)
	customers.GET("", s.GetCustomers)
	customers.POST("", s.CreateCustomer)
	customers.GET("/:id", s.GetCustomer)
	customers.PUT("/:id", s.UpdateCustomer)
	customers.DELETE("/:id", s.DeleteCustomer)

	categories := api.Group("/categories")
	categories.GET("", s.GetCategories, RequireAuthenticated)
	categories.GET("/:id", s.GetCategory, RequireAuthenticated)
	categories.POST("", s.CreateCategory, RequireAdmin)
	categories.PUT("/:id", s.UpdateCategory, RequireAdmin)
	categories.DELETE("/:id", s.DeleteCategory, RequireAdmin)

	products := api.Group("/products")
	products.GET("", s.GetProducts, RequireAuthenticated)
	products.GET("/:id", s.GetProduct, RequireAuthenticated)
	products.POST("", s.CreateProduct, RequireAdmin)
	products.PUT("/:id", s.UpdateProduct, RequireAdmin)
	products.PATCH("/:id/availability", s.SetProductAvailability, RequireAdmin)
	products.DELETE("/:id", s.DeleteProduct, RequireAdmin)

	drivers := api.Group("/drivers", RequireAdmin)
	drivers.GET("", s.GetDrivers)
	drivers.POST("", s.CreateDriver)
	drivers.GET("/:id", s.GetDriver)
	drivers.PUT("/:id", s.UpdateDriver)
	drivers.DELETE("/:id", s.DeleteDriver)

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder, RequireCustomer)
	orders.GET("", s.GetOrders, RequireAdmin)
	orders.GET("/:id", s.GetOrder, RequireAuthenticated)
	orders.GET("/customer/:customerId", s.GetOrdersByCustomer, RequireAuthenticated)
	orders.PATCH("/:id/pay", s.PayOrder, RequireAuthenticated)
	orders.PATCH("/:id/prepare", s.PrepareOrder, RequireAdmin)
	orders.PATCH("/:id/ship", s.ShipOrder, RequireAdmin)
	orders.PATCH("/:id/deliver", s.DeliverOrder, RequireAdmin)
	orders.PATCH("/:id/cancel", s.CancelOrder, RequireAuthenticated)
	orders.DELETE("/:id", s.DeleteOrder, RequireAdmin)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
