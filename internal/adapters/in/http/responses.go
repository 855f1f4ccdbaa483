package http

import (
	"time"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/application/usecases/queries"
	"deliveryapp/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Transport shapes. Domain identifiers render as strings; the write side
// returns command responses, the read side returns view projections with
// joined names.

type orderItemJSON struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type orderJSON struct {
	ID               string          `json:"id"`
	CustomerID       string          `json:"customerId"`
	DeliveryDriverID *string         `json:"deliveryDriverId"`
	DeliveryAddress  string          `json:"deliveryAddress"`
	Status           string          `json:"status"`
	Items            []orderItemJSON `json:"items"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        *time.Time      `json:"updatedAt"`
}

func newOrderJSON(resp commands.OrderResponse) orderJSON {
	items := make([]orderItemJSON, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, orderItemJSON{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	return orderJSON{
		ID:               resp.ID.String(),
		CustomerID:       resp.CustomerID.String(),
		DeliveryDriverID: uuidPtrString(resp.DeliveryDriverID),
		DeliveryAddress:  resp.DeliveryAddress,
		Status:           resp.Status,
		Items:            items,
		TotalAmount:      resp.TotalAmount,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
	}
}

type orderItemViewJSON struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName *string         `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type orderViewJSON struct {
	ID                 string              `json:"id"`
	CustomerID         string              `json:"customerId"`
	CustomerName       string              `json:"customerName"`
	DeliveryDriverID   *string             `json:"deliveryDriverId"`
	DeliveryDriverName *string             `json:"deliveryDriverName"`
	DeliveryAddress    string              `json:"deliveryAddress"`
	Status             string              `json:"status"`
	Items              []orderItemViewJSON `json:"items"`
	TotalAmount        decimal.Decimal     `json:"totalAmount"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          *time.Time          `json:"updatedAt"`
}

func newOrderViewJSON(view queries.OrderView) orderViewJSON {
	items := make([]orderItemViewJSON, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, orderItemViewJSON{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return orderViewJSON{
		ID:                 view.ID.String(),
		CustomerID:         view.CustomerID.String(),
		CustomerName:       view.CustomerName,
		DeliveryDriverID:   uuidPtrString(view.DeliveryDriverID),
		DeliveryDriverName: view.DeliveryDriverName,
		DeliveryAddress:    view.DeliveryAddress,
		Status:             view.Status,
		Items:              items,
		TotalAmount:        view.TotalAmount,
		CreatedAt:          view.CreatedAt,
		UpdatedAt:          view.UpdatedAt,
	}
}

type accountJSON struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func newAccountJSON(resp commands.AccountResponse) accountJSON {
	return accountJSON{
		ID:        resp.ID.String(),
		Email:     resp.Email,
		FullName:  resp.FullName,
		Role:      resp.Role.String(),
		CreatedAt: resp.CreatedAt,
	}
}

type customerJSON struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func newCustomerJSON(resp commands.CustomerResponse) customerJSON {
	return customerJSON{
		ID:        resp.ID.String(),
		UserID:    resp.UserID.String(),
		Name:      resp.Name,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Address:   resp.Address,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
}

func newCustomerViewJSON(view queries.CustomerView) customerJSON {
	return customerJSON{
		ID:        view.ID.String(),
		UserID:    view.UserID.String(),
		Name:      view.Name,
		Email:     view.Email,
		Phone:     view.Phone,
		Address:   view.Address,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

type productJSON struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"categoryId"`
	CategoryName *string         `json:"categoryName,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"imageUrl"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    *time.Time      `json:"updatedAt"`
}

func newProductJSON(resp commands.ProductResponse) productJSON {
	return productJSON{
		ID:          resp.ID.String(),
		CategoryID:  resp.CategoryID.String(),
		Name:        resp.Name,
		Description: resp.Description,
		Price:       resp.Price,
		ImageURL:    resp.ImageURL,
		IsActive:    resp.IsActive,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}

func newProductViewJSON(view queries.ProductView) productJSON {
	return productJSON{
		ID:           view.ID.String(),
		CategoryID:   view.CategoryID.String(),
		CategoryName: view.CategoryName,
		Name:         view.Name,
		Description:  view.Description,
		Price:        view.Price,
		ImageURL:     view.ImageURL,
		IsActive:     view.IsActive,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
}

type categoryJSON struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func newCategoryJSON(resp commands.CategoryResponse) categoryJSON {
	return categoryJSON{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Description: resp.Description,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}

func newCategoryViewJSON(view queries.CategoryView) categoryJSON {
	return categoryJSON{
		ID:          view.ID.String(),
		Name:        view.Name,
		Description: view.Description,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

type driverJSON struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	VehicleType string     `json:"vehicleType"`
	IsAvailable bool       `json:"isAvailable"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func newDriverJSON(resp commands.DriverResponse) driverJSON {
	return driverJSON{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Phone:       resp.Phone,
		VehicleType: resp.VehicleType,
		IsAvailable: resp.IsAvailable,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}

func newDriverViewJSON(view queries.DriverView) driverJSON {
	return driverJSON{
		ID:          view.ID.String(),
		Name:        view.Name,
		Phone:       view.Phone,
		VehicleType: view.VehicleType,
		IsAvailable: view.IsAvailable,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

func uuidPtrString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
