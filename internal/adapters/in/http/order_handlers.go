package http

import (
	"net/http"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/application/usecases/queries"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the body for POST /api/orders.
type CreateOrderRequest struct {
	DeliveryAddress string                   `json:"deliveryAddress"`
	Items           []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one requested order line. The price is looked up
// server side; clients only say what and how much.
type CreateOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ShipOrderRequest is the body for PATCH /api/orders/:id/ship.
type ShipOrderRequest struct {
	DriverID string `json:"driverId"`
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return writeError(c, errs.NewValueIsInvalidError("productId"))
		}
		items = append(items, commands.OrderItemInput{ProductID: productID, Quantity: line.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), callerFrom(c), req.DeliveryAddress, items)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newOrderJSON(resp))
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(c echo.Context) error {
	views, err := s.getAllOrdersHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]orderViewJSON, 0, len(views))
	for _, view := range views {
		response = append(response, newOrderViewJSON(view))
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID, callerFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.getOrderByIDHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newOrderViewJSON(view))
}

// GetOrdersByCustomer handles GET /api/orders/customer/:customerId.
func (s *Server) GetOrdersByCustomer(c echo.Context) error {
	customerID, err := pathUUID(c, "customerId")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID, callerFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	views, err := s.getOrdersByCustomerHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]orderViewJSON, 0, len(views))
	for _, view := range views {
		response = append(response, newOrderViewJSON(view))
	}

	return c.JSON(http.StatusOK, response)
}

// PayOrder handles PATCH /api/orders/:id/pay.
func (s *Server) PayOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewPayOrderCommand(orderID, callerFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.payOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newOrderJSON(resp))
}

// PrepareOrder handles PATCH /api/orders/:id/prepare.
func (s *Server) PrepareOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewPrepareOrderCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.prepareOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newOrderJSON(resp))
}

// ShipOrder handles PATCH /api/orders/:id/ship.
func (s *Server) ShipOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req ShipOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidError("driverId"))
	}

	cmd, err := commands.NewShipOrderCommand(orderID, driverID)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.shipOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newOrderJSON(resp))
}

// DeliverOrder handles PATCH /api/orders/:id/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.deliverOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newOrderJSON(resp))
}

// CancelOrder handles PATCH /api/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, callerFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newOrderJSON(resp))
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// pathUUID parses a path parameter as an identifier.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidError(name)
	}
	return id, nil
}
