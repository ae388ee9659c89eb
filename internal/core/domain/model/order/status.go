package order

import (
	"fmt"

	"artmarket/internal/pkg/errs"
)

// DeliveryStatus represents the lifecycle stage of physically transporting a
// sold or commissioned item from artist to buyer. It implements a state
// machine with a fixed forward sequence:
//
//	NotApplicable ──> Pending ──> Accepted ──> OutForDelivery ──> Delivered
//
// No transition skips a state. Administrative overrides bypass the sequence
// via Delivery.Override, which is the one deliberate exception and is audited
// separately by the application layer.
//
// DeliveryStatus is a value object that validates state transitions and
// provides string representations for persistence and display.
type DeliveryStatus int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized DeliveryStatus values.
	UnknownStatus DeliveryStatus = iota

	// NotApplicable is the initial status for orders that have not requested
	// delivery yet, e.g. a commission still being negotiated or a catalog
	// order whose artist has not asked for pickup.
	NotApplicable

	// Pending indicates the artist has requested delivery and the order is
	// waiting for a delivery partner to accept it.
	Pending

	// Accepted indicates a delivery partner took the job. The shipping fee
	// and the partner id are captured atomically with this status.
	Accepted

	// OutForDelivery indicates the partner picked the item up and is
	// transporting it to the buyer.
	OutForDelivery

	// Delivered indicates the item reached the buyer. This is a final state
	// with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of DeliveryStatus values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		UnknownStatus:  "Unknown",
		NotApplicable:  "NotApplicable",
		Pending:        "Pending",
		Accepted:       "Accepted",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid DeliveryStatus values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		NotApplicable:  "NotApplicable",
		Pending:        "Pending",
		Accepted:       "Accepted",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// ParseDeliveryStatus converts a string representation to a DeliveryStatus.
// Returns ValueIsInvalidError for anything that is not a valid status name.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the DeliveryStatus value is valid.
// UnknownStatus (0) and any out-of-range values are invalid.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s DeliveryStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further normal transitions.
func (s DeliveryStatus) IsTerminal() bool {
	return s == Delivered
}

// RequiresAssignment reports whether orders in this status must carry a
// shipping fee and an assigned delivery partner. The invariant is two-sided:
// statuses earlier than Accepted must not carry either.
func (s DeliveryStatus) RequiresAssignment() bool {
	return s == Accepted || s == OutForDelivery || s == Delivered
}

// ValidateCanHaveAssignment validates the consistency between the status and
// the presence of a fee/partner assignment.
//
// Business rules:
//   - NotApplicable and Pending orders must not carry a fee or partner
//   - Accepted, OutForDelivery, and Delivered orders must carry both
func (s DeliveryStatus) ValidateCanHaveAssignment(assigned bool) error {
	if assigned && !s.RequiresAssignment() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%s must not carry a fee or partner assignment", s))
	}

	if !assigned && s.RequiresAssignment() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%s requires a fee and partner assignment", s))
	}

	return nil
}

// Request transitions the status to Pending.
//
// Valid transitions:
//   - NotApplicable -> Pending (artist requests pickup)
//
// Returns:
//   - (Pending, nil) on valid transition
//   - (0, InvalidStateError) if the current status is not NotApplicable
func (s DeliveryStatus) Request() (DeliveryStatus, error) {
	if s != NotApplicable {
		return 0, errs.NewInvalidStateError("requestDelivery", s.String())
	}
	return Pending, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (partner takes the job)
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (0, InvalidStateError) if the current status is not Pending
func (s DeliveryStatus) Accept() (DeliveryStatus, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("acceptDelivery", s.String())
	}
	return Accepted, nil
}

// Dispatch transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Accepted -> OutForDelivery (partner picked the item up)
//
// Returns:
//   - (OutForDelivery, nil) on valid transition
//   - (0, InvalidStateError) if the current status is not Accepted
func (s DeliveryStatus) Dispatch() (DeliveryStatus, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateError("markOutForDelivery", s.String())
	}
	return OutForDelivery, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered (item reached the buyer)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, InvalidStateError) if the current status is not OutForDelivery
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != OutForDelivery {
		return 0, errs.NewInvalidStateError("markDelivered", s.String())
	}
	return Delivered, nil
}
