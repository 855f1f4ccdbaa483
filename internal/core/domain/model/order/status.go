package order

import (
	"fmt"

	"deliveryapp/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Shipped ──> Delivered
//	   │            │             │            │
//	   └────────────┴─────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. No transition skips a stage and no
// transition moves backward. Status is a value object: each transition method
// returns the next status or an InvalidTransitionError, leaving the receiver
// untouched.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// The order is awaiting payment.
	Pending

	// Confirmed indicates the order has been paid.
	Confirmed

	// Preparing indicates the kitchen has started preparing the order.
	Preparing

	// Shipped indicates the order has been handed to a delivery driver.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid. Unknown (0) and out-of-range
// values are invalid. Used when restoring orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Pay transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("pay", s.String(), "only pending orders can be paid")
	}

	return Confirmed, nil
}

// Prepare transitions the status to Preparing.
//
// Valid transitions:
//   - Confirmed -> Preparing
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Prepare() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidTransitionError("prepare", s.String(), "only confirmed orders can be prepared")
	}

	return Preparing, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Preparing -> Shipped
//
// Returns (0, InvalidTransitionError) from any other status. Driver existence
// is validated by the caller before the transition is attempted.
func (s Status) Ship() (Status, error) {
	if s != Preparing {
		return 0, errs.NewInvalidTransitionError("ship", s.String(), "only preparing orders can be shipped")
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered, the final state of the happy path.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidTransitionError("deliver", s.String(), "only shipped orders can be delivered")
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from every non-terminal status. Cancelling an already terminal order is
// rejected with a status-specific message so double-cancel attempts surface to
// the caller instead of succeeding silently.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Delivered:
		return 0, errs.NewInvalidTransitionError("cancel", s.String(), "delivered orders cannot be cancelled")
	case Cancelled:
		return 0, errs.NewInvalidTransitionError("cancel", s.String(), "order is already cancelled")
	default:
		return Cancelled, nil
	}
}
