// Package queries contains read-only operations backed directly by the
// database. Query handlers hold a gorm connection and project rows into
// view structs without going through the aggregates.
package queries

import (
	"context"
	"time"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the read-side projection of an order. Unlike the command
// responses it joins in customer and driver names for display.
type OrderView struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	CustomerName       string
	DeliveryDriverID   *kernel.UUID
	DeliveryDriverName *string
	DeliveryAddress    string
	Status             string
	Items              []OrderItemView
	TotalAmount        decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// OrderItemView is a single order line with its product name joined in.
// The name is a pointer: the product may have been deleted since.
type OrderItemView struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName *string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// orderRow is the scan target for the order header query. ownerUserID
// rides along for access checks and is not part of the view.
type orderRow struct {
	view        OrderView
	ownerUserID uuid.UUID
}

const orderHeaderSQL = `
	SELECT
		o.id,
		o.customer_id,
		c.name,
		c.user_id,
		o.delivery_driver_id,
		d.name,
		o.delivery_address,
		o.status,
		o.total_amount,
		o.created_at,
		o.updated_at
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	LEFT JOIN drivers d ON d.id = o.delivery_driver_id
`

func scanOrderRow(rows interface {
	Scan(dest ...any) error
}) (orderRow, error) {
	var (
		row        orderRow
		id         uuid.UUID
		customerID uuid.UUID
		driverID   *uuid.UUID
		status     int
	)

	err := rows.Scan(
		&id,
		&customerID,
		&row.view.CustomerName,
		&row.ownerUserID,
		&driverID,
		&row.view.DeliveryDriverName,
		&row.view.DeliveryAddress,
		&status,
		&row.view.TotalAmount,
		&row.view.CreatedAt,
		&row.view.UpdatedAt,
	)
	if err != nil {
		return orderRow{}, err
	}

	if row.view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return orderRow{}, err
	}
	if row.view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return orderRow{}, err
	}
	if driverID != nil {
		restored, idErr := kernel.UUIDFromBytes((*driverID)[:])
		if idErr != nil {
			return orderRow{}, idErr
		}
		row.view.DeliveryDriverID = &restored
	}
	row.view.Status = order.Status(status).String()

	return row, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.product_id,
			p.name,
			i.quantity,
			i.unit_price
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			item      OrderItemView
			id        uuid.UUID
			productID uuid.UUID
		)

		if err = rows.Scan(&id, &productID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// checkOrderAccess applies the read-side ownership rule: admins see
// everything, customers only orders whose owning profile links to their
// user id.
func checkOrderAccess(caller auth.Caller, ownerUserID uuid.UUID) error {
	if !caller.IsAuthenticated() {
		return errs.NewUnauthorizedError("authentication required")
	}
	if caller.IsAdmin() {
		return nil
	}
	if caller.UserID().Bytes() != ownerUserID {
		return errs.NewForbiddenError("order belongs to another customer")
	}
	return nil
}
