package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliveryapp/internal/core/domain/model/driver"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DriverView is the read-side projection of a delivery driver.
type DriverView struct {
	ID          kernel.UUID
	Name        string
	Phone       string
	VehicleType string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

const driverSQL = `
	SELECT id, name, phone, vehicle_type, is_available, created_at, updated_at
	FROM drivers
`

func scanDriver(row interface {
	Scan(dest ...any) error
}) (DriverView, error) {
	var (
		view        DriverView
		id          uuid.UUID
		vehicleType int
	)

	err := row.Scan(&id, &view.Name, &view.Phone, &vehicleType,
		&view.IsAvailable, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return DriverView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DriverView{}, err
	}
	view.VehicleType = driver.VehicleType(vehicleType).String()

	return view, nil
}

// GetDriverByIDQueryHandler fetches a single driver.
type GetDriverByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverByIDQueryHandler creates a handler for single driver reads.
func NewGetDriverByIDQueryHandler(db *gorm.DB) GetDriverByIDQueryHandler {
	return GetDriverByIDQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDriverByIDQueryHandler) Handle(ctx context.Context, driverID kernel.UUID) (DriverView, error) {
	if err := driverID.Validate(); err != nil {
		return DriverView{}, err
	}

	row := h.db.WithContext(ctx).Raw(driverSQL+` WHERE id = ?`, driverID.Bytes()).Row()

	view, err := scanDriver(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DriverView{}, errs.NewObjectNotFoundError("DeliveryDriver", driverID)
		}
		return DriverView{}, err
	}

	return view, nil
}

// GetAllDriversQueryHandler lists every driver.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for the driver listing.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllDriversQueryHandler) Handle(ctx context.Context) ([]DriverView, error) {
	rows, err := h.db.WithContext(ctx).Raw(driverSQL + ` ORDER BY name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]DriverView, 0)
	for rows.Next() {
		view, scanErr := scanDriver(rows)
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
