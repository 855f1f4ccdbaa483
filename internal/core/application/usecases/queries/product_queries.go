package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductView is the read-side projection of a catalog product with its
// category name joined in.
type ProductView struct {
	ID           kernel.UUID
	CategoryID   kernel.UUID
	CategoryName *string
	Name         string
	Description  string
	Price        decimal.Decimal
	ImageURL     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

const productSQL = `
	SELECT
		p.id,
		p.category_id,
		c.name,
		p.name,
		p.description,
		p.price,
		p.image_url,
		p.is_active,
		p.created_at,
		p.updated_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
`

func scanProduct(row interface {
	Scan(dest ...any) error
}) (ProductView, error) {
	var (
		view       ProductView
		id         uuid.UUID
		categoryID uuid.UUID
	)

	err := row.Scan(&id, &categoryID, &view.CategoryName, &view.Name, &view.Description,
		&view.Price, &view.ImageURL, &view.IsActive, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return ProductView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ProductView{}, err
	}
	if view.CategoryID, err = kernel.UUIDFromBytes(categoryID[:]); err != nil {
		return ProductView{}, err
	}

	return view, nil
}

// GetProductByIDQueryHandler fetches a single catalog product.
type GetProductByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetProductByIDQueryHandler creates a handler for single product reads.
func NewGetProductByIDQueryHandler(db *gorm.DB) GetProductByIDQueryHandler {
	return GetProductByIDQueryHandler{db: db}
}

// Handle executes the query.
func (h GetProductByIDQueryHandler) Handle(ctx context.Context, productID kernel.UUID) (ProductView, error) {
	if err := productID.Validate(); err != nil {
		return ProductView{}, err
	}

	row := h.db.WithContext(ctx).Raw(productSQL+` WHERE p.id = ?`, productID.Bytes()).Row()

	view, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductView{}, errs.NewObjectNotFoundError("Product", productID)
		}
		return ProductView{}, err
	}

	return view, nil
}

// GetAllProductsQueryHandler lists catalog products, optionally scoped to
// one category.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for the product listing.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query. A nil categoryID lists the whole catalog.
func (h GetAllProductsQueryHandler) Handle(ctx context.Context, categoryID *kernel.UUID) ([]ProductView, error) {
	query := h.db.WithContext(ctx)

	var rows *sql.Rows
	var err error
	if categoryID != nil {
		if err = categoryID.Validate(); err != nil {
			return nil, err
		}
		rows, err = query.Raw(productSQL+` WHERE p.category_id = ? ORDER BY p.name`, categoryID.Bytes()).Rows()
	} else {
		rows, err = query.Raw(productSQL + ` ORDER BY p.name`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ProductView, 0)
	for rows.Next() {
		view, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
