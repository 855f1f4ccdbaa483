package order

import (
	"errors"
	"strings"
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the ordering workflow. It owns its line items
// and is the only place where the order status may change.
//
// Order maintains these invariants:
//   - the customer and delivery address are fixed at creation
//   - the item list is never empty once creation has completed
//   - totalAmount always equals the sum of quantity × unit price over the items
//   - the delivery driver is nil until the Ship transition sets it, exactly once
//   - status only moves forward along Pending→Confirmed→Preparing→Shipped→Delivered,
//     or sideways into Cancelled from any non-terminal state
//
// All fields are private; mutation happens only through the named transition
// methods, never by field assignment.
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	deliveryDriverID *kernel.UUID
	deliveryAddress  string
	status           Status
	items            []Item
	totalAmount      decimal.Decimal
	createdAt        time.Time
	updatedAt        *time.Time
	version          int

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates an Order in Pending status with the given line items.
// Each item must carry a unit price already resolved from the product catalog;
// price lookup is not this aggregate's job.
//
// Validation failures are joined so the caller can distinguish every unmet
// precondition by field:
//   - customerId must be a valid identifier
//   - deliveryAddress must be non-blank
//   - items must be non-empty and individually valid
func NewOrder(id kernel.UUID, customerID kernel.UUID, deliveryAddress string, items []Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.recalculateTotal()
	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state, revalidating every
// invariant so corrupted rows cannot enter the domain.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryDriverID *kernel.UUID,
	deliveryAddress string,
	status Status,
	items []Item,
	createdAt time.Time,
	updatedAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		status.Validate(),
		status.ValidateCanHaveDriver(deliveryDriverID != nil),
	); err != nil {
		return nil, err
	}

	if deliveryDriverID != nil {
		if err := deliveryDriverID.Validate(); err != nil {
			return nil, err
		}
		driverID := *deliveryDriverID
		o.deliveryDriverID = &driverID
	}

	o.recalculateTotal()
	return o, nil
}

// ValidateCanHaveDriver validates consistency between a status and driver
// assignment when restoring from persistence: a driver is required from Shipped
// onward and forbidden before Ship. Cancelled orders may carry a driver because
// cancellation is allowed after shipping.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != Shipped && s != Delivered && s != Cancelled {
		return errs.NewValueIsInvalidError("deliveryDriverId must be empty before the order is shipped")
	}
	if !hasDriver && (s == Shipped || s == Delivered) {
		return errs.NewValueIsInvalidError("deliveryDriverId is required once the order is shipped")
	}
	return nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence and before
// any write.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryDriverID returns the assigned driver's identifier.
// Returns nil until a successful Ship transition.
func (o *Order) DeliveryDriverID() *kernel.UUID {
	return o.deliveryDriverID
}

// DeliveryAddress returns the destination address fixed at creation.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of quantity × unit price over all items.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last state change, or nil if the
// order has never been mutated since creation.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency token. The repository rejects an
// update whose version no longer matches the stored row.
func (o *Order) Version() int {
	return o.version
}

// Pay confirms payment and moves the order from Pending to Confirmed.
// Any other current status yields an InvalidTransitionError.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Prepare moves the order from Confirmed to Preparing.
func (o *Order) Prepare() error {
	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Ship assigns the delivery driver and moves the order from Preparing to
// Shipped. The driver must have been resolved to an existing DeliveryDriver by
// the caller. The driver is set exactly once: the Preparing guard guarantees no
// driver was assigned before.
func (o *Order) Ship(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryDriverID = &driverID
	o.touch()
	return nil
}

// Deliver moves the order from Shipped to Delivered, the terminal happy-path state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves the order into the terminal Cancelled state from any non-terminal
// status. Cancelling a Delivered or already Cancelled order is rejected with a
// status-specific InvalidTransitionError. Cancel does not update updatedAt: the
// cancellation itself is the final word on the order.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AddItem appends a line to the order. Only permitted while the order is still
// Pending; once payment has been confirmed the item list is frozen. The total
// is recomputed from the new item list.
func (o *Order) AddItem(item Item) error {
	if o.status != Pending {
		return errs.NewInvalidTransitionError("addItem", o.status.String(), "only pending orders can be modified")
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recalculateTotal()
	o.touch()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total
}

func (o *Order) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}
