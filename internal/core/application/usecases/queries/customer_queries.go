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

// CustomerView is the read-side projection of a customer profile.
type CustomerView struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

const customerSQL = `
	SELECT id, user_id, name, email, phone, address, created_at, updated_at
	FROM customers
`

func scanCustomer(row interface {
	Scan(dest ...any) error
}) (CustomerView, error) {
	var (
		view   CustomerView
		id     uuid.UUID
		userID uuid.UUID
	)

	err := row.Scan(&id, &userID, &view.Name, &view.Email, &view.Phone,
		&view.Address, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return CustomerView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return CustomerView{}, err
	}
	if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return CustomerView{}, err
	}

	return view, nil
}

// GetCustomerByIDQueryHandler fetches a single customer profile.
type GetCustomerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByIDQueryHandler creates a handler for single customer reads.
func NewGetCustomerByIDQueryHandler(db *gorm.DB) GetCustomerByIDQueryHandler {
	return GetCustomerByIDQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCustomerByIDQueryHandler) Handle(ctx context.Context, customerID kernel.UUID) (CustomerView, error) {
	if err := customerID.Validate(); err != nil {
		return CustomerView{}, err
	}

	row := h.db.WithContext(ctx).Raw(customerSQL+` WHERE id = ?`, customerID.Bytes()).Row()

	view, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerView{}, errs.NewObjectNotFoundError("Customer", customerID)
		}
		return CustomerView{}, err
	}

	return view, nil
}

// GetAllCustomersQueryHandler lists every customer profile.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for the customer listing.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllCustomersQueryHandler) Handle(ctx context.Context) ([]CustomerView, error) {
	rows, err := h.db.WithContext(ctx).Raw(customerSQL + ` ORDER BY name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]CustomerView, 0)
	for rows.Next() {
		view, scanErr := scanCustomer(rows)
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
