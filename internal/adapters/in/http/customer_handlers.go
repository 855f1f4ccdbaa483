package http

import (
	"net/http"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CustomerRequest is the body for customer create and update. UserID links
// the profile to an account and is only read on create.
type CustomerRequest struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// GetCustomers handles GET /api/customers.
func (s *Server) GetCustomers(c echo.Context) error {
	views, err := s.getAllCustomersHandler.Handle(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]customerJSON, 0, len(views))
	for _, view := range views {
		response = append(response, newCustomerViewJSON(view))
	}

	return c.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	customerID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.getCustomerByIDHandler.Handle(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newCustomerViewJSON(view))
}

// CreateCustomer handles POST /api/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidError("userId"))
	}

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), userID,
		req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.customerHandler.HandleCreate(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newCustomerJSON(resp))
}

// UpdateCustomer handles PUT /api/customers/:id.
func (s *Server) UpdateCustomer(c echo.Context) error {
	customerID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID,
		req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.customerHandler.HandleUpdate(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newCustomerJSON(resp))
}

// DeleteCustomer handles DELETE /api/customers/:id.
func (s *Server) DeleteCustomer(c echo.Context) error {
	customerID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.customerHandler.HandleDelete(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
