package order

import (
	"fmt"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a line of an Order. It has no lifecycle of its own: items are created
// together with the order (or appended while the order is still Pending) and
// are immutable afterwards.
//
// The unit price is a snapshot of the product price at order-creation time.
// Later product price changes never affect existing orders.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
}

// NewItem creates an order line for the given product. The quantity must be
// positive and the unit price, resolved by the caller from the product catalog,
// must be greater than zero.
func NewItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (Item, error) {
	return RestoreItem(kernel.NewUUID(), productID, quantity, unitPrice)
}

// RestoreItem reconstructs an order line from persistence, re-applying the same
// validation as NewItem.
func RestoreItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := productID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !unitPrice.IsPositive() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}

	return Item{
		id:        id,
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken at order-creation time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity × unit price.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Validate reports whether the item was created through a constructor.
// A zero-value Item has a nil product ID and fails validation.
func (i Item) Validate() error {
	if err := i.id.Validate(); err != nil {
		return err
	}
	if err := i.productID.Validate(); err != nil {
		return err
	}
	if i.quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	return nil
}
