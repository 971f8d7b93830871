package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions enforced by business operations:
//
//	Pending ──> Processing ──> Shipped ──> Delivered   (terminal)
//	   │
//	   └──> Cancelled                                  (terminal)
//
// Cancellation is only permitted from Pending, and the periodic sweep only
// moves Pending orders to Processing. Administrative status updates bypass
// the diagram but still require a valid status value.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	Pending

	// Processing indicates the order has been picked up by the sweep
	// and is being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	// Terminal: no further transitions are defined.
	Delivered

	// Cancelled indicates the order was cancelled while still Pending.
	// Terminal: no further transitions are defined.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses the persisted enum name back into a Status.
// Rejects names outside the five defined statuses, so no other value is
// representable after rehydration.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status name", s),
	)
}

// Validate checks that the Status is one of the five defined values.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the enum name of the status, which is also its persisted
// representation. Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (picked up by the sweep)
//
// Returns (0, *errs.InvalidStateError) for any other current status.
func (s Status) StartProcessing() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("order", s.String(), Processing.String())
	}

	return Processing, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Orders that are already Processing, Shipped, Delivered, or Cancelled
// cannot be cancelled; returns (0, *errs.InvalidStateError) for those.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("order", s.String(), Cancelled.String())
	}

	return Cancelled, nil
}
