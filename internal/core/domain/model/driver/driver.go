// Package driver holds the delivery driver aggregate. Drivers are assigned
// to orders when they ship; the availability flag marks who can take new
// deliveries.
package driver

import (
	"errors"
	"strings"
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

type Driver struct {
	id          kernel.UUID
	name        string
	phone       string
	vehicleType VehicleType
	isAvailable bool
	createdAt   time.Time
	updatedAt   *time.Time
	guard       guard.ConstructorGuard
}

// NewDriver creates an available driver.
func NewDriver(id kernel.UUID, name, phone string, vehicleType VehicleType) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}
	driver.isAvailable = true
	driver.createdAt = time.Now().UTC()

	return driver, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(id kernel.UUID, name, phone string, vehicleType VehicleType,
	isAvailable bool, createdAt time.Time, updatedAt *time.Time) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}
	driver.isAvailable = isAvailable
	driver.createdAt = createdAt
	driver.updatedAt = updatedAt

	return driver, nil
}

// Update replaces the driver's mutable fields.
func (d *Driver) Update(name, phone string, vehicleType VehicleType, isAvailable bool) error {
	if err := errors.Join(
		d.setName(name),
		d.setPhone(phone),
		d.setVehicleType(vehicleType),
	); err != nil {
		return err
	}
	d.isAvailable = isAvailable
	d.touch()
	return nil
}

// SetAvailability toggles whether the driver can take new deliveries.
func (d *Driver) SetAvailability(isAvailable bool) {
	d.isAvailable = isAvailable
	d.touch()
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	d.vehicleType = vehicleType
	return nil
}

func (d *Driver) touch() {
	now := time.Now().UTC()
	d.updatedAt = &now
}

// Validate checks that the Driver was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Phone() string {
	return d.phone
}

func (d *Driver) VehicleType() VehicleType {
	return d.vehicleType
}

func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Driver) UpdatedAt() *time.Time {
	return d.updatedAt
}
