package customer

import (
	"errors"
	"strings"
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the delivery recipient profile. It is linked to the user
// account that owns it through userID; ownership checks resolve callers
// to customers through that link.
type Customer struct {
	id        kernel.UUID
	userID    kernel.UUID
	name      string
	email     string
	phone     string
	address   string
	createdAt time.Time
	updatedAt *time.Time
	guard     guard.ConstructorGuard
}

// NewCustomer creates a customer profile owned by the given user account.
func NewCustomer(id kernel.UUID, userID kernel.UUID, name, email, phone, address string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setUserID(userID),
		customer.setName(name),
		customer.setEmail(email),
		customer.setPhone(phone),
		customer.setAddress(address),
	); err != nil {
		return nil, err
	}
	customer.createdAt = time.Now().UTC()

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id kernel.UUID, userID kernel.UUID, name, email, phone, address string,
	createdAt time.Time, updatedAt *time.Time) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setUserID(userID),
		customer.setName(name),
		customer.setEmail(email),
		customer.setPhone(phone),
		customer.setAddress(address),
	); err != nil {
		return nil, err
	}
	customer.createdAt = createdAt
	customer.updatedAt = updatedAt

	return customer, nil
}

// Update replaces the customer's mutable profile fields.
func (c *Customer) Update(name, email, phone, address string) error {
	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return err
	}
	c.touch()
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

func (c *Customer) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *Customer) touch() {
	now := time.Now().UTC()
	c.updatedAt = &now
}

// Validate checks that the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) UserID() kernel.UUID {
	return c.userID
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() *time.Time {
	return c.updatedAt
}
