package http

import (
	"net/http"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProductRequest is the body for product create and update.
type ProductRequest struct {
	CategoryID  string          `json:"categoryId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

// ProductAvailabilityRequest is the body for PATCH /api/products/:id/availability.
type ProductAvailabilityRequest struct {
	IsActive bool `json:"isActive"`
}

// CategoryRequest is the body for category create and update.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetProducts handles GET /api/products with an optional categoryId filter.
func (s *Server) GetProducts(c echo.Context) error {
	var categoryID *kernel.UUID
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(c, errs.NewValueIsInvalidError("categoryId"))
		}
		categoryID = &id
	}

	views, err := s.getAllProductsHandler.Handle(c.Request().Context(), categoryID)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]productJSON, 0, len(views))
	for _, view := range views {
		response = append(response, newProductViewJSON(view))
	}

	return c.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.getProductByIDHandler.Handle(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newProductViewJSON(view))
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidError("categoryId"))
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), categoryID,
		req.Name, req.Description, req.Price, req.ImageURL)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.productHandler.HandleCreate(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newProductJSON(resp))
}

// UpdateProduct handles PUT /api/products/:id.
func (s *Server) UpdateProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidError("categoryId"))
	}

	cmd, err := commands.NewUpdateProductCommand(productID, categoryID,
		req.Name, req.Description, req.Price, req.ImageURL)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.productHandler.HandleUpdate(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newProductJSON(resp))
}

// SetProductAvailability handles PATCH /api/products/:id/availability.
func (s *Server) SetProductAvailability(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req ProductAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewSetProductAvailabilityCommand(productID, req.IsActive)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.productHandler.HandleSetAvailability(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newProductJSON(resp))
}

// DeleteProduct handles DELETE /api/products/:id.
func (s *Server) DeleteProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.productHandler.HandleDelete(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCategories handles GET /api/categories.
func (s *Server) GetCategories(c echo.Context) error {
	views, err := s.getAllCategoriesHandler.Handle(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]categoryJSON, 0, len(views))
	for _, view := range views {
		response = append(response, newCategoryViewJSON(view))
	}

	return c.JSON(http.StatusOK, response)
}

// GetCategory handles GET /api/categories/:id.
func (s *Server) GetCategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.getCategoryByIDHandler.Handle(c.Request().Context(), categoryID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newCategoryViewJSON(view))
}

// CreateCategory handles POST /api/categories.
func (s *Server) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), req.Name, req.Description)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.categoryHandler.HandleCreate(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newCategoryJSON(resp))
}

// UpdateCategory handles PUT /api/categories/:id.
func (s *Server) UpdateCategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewUpdateCategoryCommand(categoryID, req.Name, req.Description)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.categoryHandler.HandleUpdate(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, newCategoryJSON(resp))
}

// DeleteCategory handles DELETE /api/categories/:id.
func (s *Server) DeleteCategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteCategoryCommand(categoryID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.categoryHandler.HandleDelete(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
