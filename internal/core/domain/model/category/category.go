// Package category holds the product category aggregate. Categories are a
// flat namespace products point into; there is no nesting.
package category

import (
	"errors"
	"strings"
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when using an improperly initialized Category.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

type Category struct {
	id          kernel.UUID
	name        string
	description string
	createdAt   time.Time
	updatedAt   *time.Time
	guard       guard.ConstructorGuard
}

// NewCategory creates a category with the given name.
func NewCategory(id kernel.UUID, name, description string) (*Category, error) {
	category := &Category{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
	); err != nil {
		return nil, err
	}
	category.description = description
	category.createdAt = time.Now().UTC()

	return category, nil
}

// RestoreCategory reconstructs a Category from persistent storage.
func RestoreCategory(id kernel.UUID, name, description string,
	createdAt time.Time, updatedAt *time.Time) (*Category, error) {
	category := &Category{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
	); err != nil {
		return nil, err
	}
	category.description = description
	category.createdAt = createdAt
	category.updatedAt = updatedAt

	return category, nil
}

// Update replaces the category's name and description.
func (c *Category) Update(name, description string) error {
	if err := c.setName(name); err != nil {
		return err
	}
	c.description = description
	c.touch()
	return nil
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Category) touch() {
	now := time.Now().UTC()
	c.updatedAt = &now
}

// Validate checks that the Category was properly constructed.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c *Category) IsEqual(other *Category) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Category) ID() kernel.UUID {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() *time.Time {
	return c.updatedAt
}
