package http

import (
	"net/http"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/domain/model/driver"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// DriverRequest is the body for driver create and update. IsAvailable is
// only read on update; new drivers always start available.
type DriverRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicleType"`
	IsAvailable bool   `json:"isAvailable"`
}

// GetDrivers handles GET /api/drivers.
func (s *Server) GetDrivers(c echo.Context) error {
	views, err := s.getAllDriversHandler.Handle(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]driverJSON, 0, len(views))
	for _, view := range views {
		response = append(response, newDriverViewJSON(view))
	}

	return c.JSON(http.StatusOK, response)
}

// GetDriver handles GET /api/drivers/:id.
func (s *Server) GetDriver(c echo.Context) error {
	driverID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.getDriverByIDHandler.Handle(c.Request().Context(), driverID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newDriverViewJSON(view))
}

// CreateDriver handles POST /api/drivers.
func (s *Server) CreateDriver(c echo.Context) error {
	var req DriverRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	vehicleType, err := driver.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), req.Name, req.Phone, vehicleType)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.driverHandler.HandleCreate(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newDriverJSON(resp))
}

// UpdateDriver handles PUT /api/drivers/:id.
func (s *Server) UpdateDriver(c echo.Context) error {
	driverID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req DriverRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	vehicleType, err := driver.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, req.Name, req.Phone, vehicleType, req.IsAvailable)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.driverHandler.HandleUpdate(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newDriverJSON(resp))
}

// DeleteDriver handles DELETE /api/drivers/:id.
func (s *Server) DeleteDriver(c echo.Context) error {
	driverID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.driverHandler.HandleDelete(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
