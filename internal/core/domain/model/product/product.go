// Package product holds the catalog item aggregate. Products carry a
// decimal price and an availability flag; deactivated products stay in the
// catalog for existing order lines but cannot be ordered anymore.
package product

import (
	"errors"
	"strings"
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

type Product struct {
	id          kernel.UUID
	categoryID  kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	imageURL    string
	isActive    bool
	createdAt   time.Time
	updatedAt   *time.Time
	guard       guard.ConstructorGuard
}

// NewProduct creates an active product in the given category.
func NewProduct(id kernel.UUID, categoryID kernel.UUID, name, description string,
	price decimal.Decimal, imageURL string) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setCategoryID(categoryID),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}
	product.description = description
	product.imageURL = imageURL
	product.isActive = true
	product.createdAt = time.Now().UTC()

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(id kernel.UUID, categoryID kernel.UUID, name, description string,
	price decimal.Decimal, imageURL string, isActive bool,
	createdAt time.Time, updatedAt *time.Time) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setCategoryID(categoryID),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}
	product.description = description
	product.imageURL = imageURL
	product.isActive = isActive
	product.createdAt = createdAt
	product.updatedAt = updatedAt

	return product, nil
}

// Update replaces the product's mutable catalog fields.
func (p *Product) Update(categoryID kernel.UUID, name, description string,
	price decimal.Decimal, imageURL string) error {
	if err := errors.Join(
		p.setCategoryID(categoryID),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return err
	}
	p.description = description
	p.imageURL = imageURL
	p.touch()
	return nil
}

// Activate makes the product orderable again.
func (p *Product) Activate() {
	p.isActive = true
	p.touch()
}

// Deactivate removes the product from the orderable catalog without
// deleting it.
func (p *Product) Deactivate() {
	p.isActive = false
	p.touch()
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("categoryId")
	}
	p.categoryID = categoryID
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Product) touch() {
	now := time.Now().UTC()
	p.updatedAt = &now
}

// Validate checks that the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) ImageURL() string {
	return p.imageURL
}

func (p *Product) IsActive() bool {
	return p.isActive
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() *time.Time {
	return p.updatedAt
}
