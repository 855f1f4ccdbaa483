package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryView is the read-side projection of a product category.
type CategoryView struct {
	ID          kernel.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

const categorySQL = `
	SELECT id, name, description, created_at, updated_at
	FROM categories
`

func scanCategory(row interface {
	Scan(dest ...any) error
}) (CategoryView, error) {
	var (
		view CategoryView
		id   uuid.UUID
	)

	err := row.Scan(&id, &view.Name, &view.Description, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return CategoryView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return CategoryView{}, err
	}

	return view, nil
}

// GetCategoryByIDQueryHandler fetches a single category.
type GetCategoryByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoryByIDQueryHandler creates a handler for single category reads.
func NewGetCategoryByIDQueryHandler(db *gorm.DB) GetCategoryByIDQueryHandler {
	return GetCategoryByIDQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCategoryByIDQueryHandler) Handle(ctx context.Context, categoryID kernel.UUID) (CategoryView, error) {
	if err := categoryID.Validate(); err != nil {
		return CategoryView{}, err
	}

	row := h.db.WithContext(ctx).Raw(categorySQL+` WHERE id = ?`, categoryID.Bytes()).Row()

	view, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CategoryView{}, errs.NewObjectNotFoundError("Category", categoryID)
		}
		return CategoryView{}, err
	}

	return view, nil
}

// GetAllCategoriesQueryHandler lists every category.
type GetAllCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCategoriesQueryHandler creates a handler for the category listing.
func NewGetAllCategoriesQueryHandler(db *gorm.DB) GetAllCategoriesQueryHandler {
	return GetAllCategoriesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllCategoriesQueryHandler) Handle(ctx context.Context) ([]CategoryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(categorySQL + ` ORDER BY name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]CategoryView, 0)
	for rows.Next() {
		view, scanErr := scanCategory(rows)
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
