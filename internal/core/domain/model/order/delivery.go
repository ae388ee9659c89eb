package order

import (
	"fmt"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when validating a zero-value
// Delivery. Deliveries must be created via NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery must be created via NewDelivery or RestoreDelivery constructors")

// Delivery groups the three fields the state machine keeps consistent:
// the delivery status, the shipping fee, and the assigned delivery partner.
// The fee and the partner are non-nil iff the status is Accepted or later;
// every transition method preserves that invariant, so there is no state in
// which a fee exists without a partner or either exists without a matching
// status.
//
// Delivery is an immutable value object. Transition methods return a new
// Delivery rather than mutating the receiver.
//
// Example:
//
//	d, _ := order.NewDelivery(order.Pending)
//	fee, _ := kernel.NewMoney(1500)
//	accepted, err := d.Accept(fee, 42)
//	if err != nil {
//	    // not in Pending
//	}
//	// accepted.Status() == order.Accepted, fee and partner both set
type Delivery struct {
	status    DeliveryStatus
	fee       *kernel.Money
	partnerID *int64
	guard     guard.ConstructorGuard
}

// NewDelivery creates a Delivery in one of the two pre-assignment statuses.
// Orders are created with NotApplicable (no delivery requested yet) or
// Pending (delivery requested at order creation).
//
// Returns:
//   - Delivery: a valid delivery with no fee or partner
//   - error: ValueIsInvalidError if the status is invalid or already requires
//     an assignment
func NewDelivery(status DeliveryStatus) (Delivery, error) {
	if err := status.Validate(); err != nil {
		return Delivery{}, err
	}
	if err := status.ValidateCanHaveAssignment(false); err != nil {
		return Delivery{}, err
	}

	return Delivery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, validating the
// status/assignment consistency invariant. Both fee and partnerID must be
// present for Accepted and later statuses, and both absent before that.
func RestoreDelivery(status DeliveryStatus, fee *kernel.Money, partnerID *int64) (Delivery, error) {
	if err := status.Validate(); err != nil {
		return Delivery{}, err
	}

	if (fee == nil) != (partnerID == nil) {
		return Delivery{}, errs.NewValueIsInvalidErrorWithCause("delivery",
			fmt.Errorf("shipping fee and partner must be set together"))
	}
	if err := status.ValidateCanHaveAssignment(partnerID != nil); err != nil {
		return Delivery{}, err
	}
	if fee != nil {
		if err := fee.Validate(); err != nil {
			return Delivery{}, err
		}
	}

	return Delivery{
		status:    status,
		fee:       fee,
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Delivery was created through a constructor.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// Status returns the current delivery status.
func (d Delivery) Status() DeliveryStatus {
	return d.status
}

// Fee returns the shipping fee, or nil before acceptance.
func (d Delivery) Fee() *kernel.Money {
	return d.fee
}

// PartnerID returns the assigned delivery partner's id, or nil before
// acceptance.
func (d Delivery) PartnerID() *int64 {
	return d.partnerID
}

// Request moves the delivery from NotApplicable to Pending.
func (d Delivery) Request() (Delivery, error) {
	newStatus, err := d.status.Request()
	if err != nil {
		return Delivery{}, err
	}

	next := d
	next.status = newStatus
	return next, nil
}

// Accept moves the delivery from Pending to Accepted, capturing the shipping
// fee and the partner atomically with the status.
//
// Returns:
//   - Delivery: the accepted delivery with fee and partner set
//   - error: InvalidStateError if not Pending, or a validation error for an
//     unconstructed fee or non-positive partner id
func (d Delivery) Accept(fee kernel.Money, partnerID int64) (Delivery, error) {
	if err := fee.Validate(); err != nil {
		return Delivery{}, err
	}
	if partnerID <= 0 {
		return Delivery{}, errs.NewValueIsInvalidErrorWithCause("deliveryPartnerId",
			fmt.Errorf("%d is not a positive id", partnerID))
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return Delivery{}, err
	}

	next := d
	next.status = newStatus
	next.fee = &fee
	next.partnerID = &partnerID
	return next, nil
}

// Dispatch moves the delivery from Accepted to OutForDelivery.
// The fee and partner captured at acceptance are preserved.
func (d Delivery) Dispatch() (Delivery, error) {
	newStatus, err := d.status.Dispatch()
	if err != nil {
		return Delivery{}, err
	}

	next := d
	next.status = newStatus
	return next, nil
}

// Complete moves the delivery from OutForDelivery to Delivered, the terminal
// state.
func (d Delivery) Complete() (Delivery, error) {
	newStatus, err := d.status.Complete()
	if err != nil {
		return Delivery{}, err
	}

	next := d
	next.status = newStatus
	return next, nil
}

// Override sets the status directly, bypassing the monotonic sequence. This
// is the administrative escape hatch for disputes and manual corrections and
// must only be reached through the audited override command.
//
// Consistency is still enforced:
//   - overriding to NotApplicable or Pending clears the fee and partner
//   - overriding to Accepted or later requires a partner to already be
//     assigned; the fee may be corrected via the optional fee argument
func (d Delivery) Override(newStatus DeliveryStatus, fee *kernel.Money) (Delivery, error) {
	if err := newStatus.Validate(); err != nil {
		return Delivery{}, err
	}
	if fee != nil {
		if err := fee.Validate(); err != nil {
			return Delivery{}, err
		}
	}

	next := d
	next.status = newStatus

	if !newStatus.RequiresAssignment() {
		next.fee = nil
		next.partnerID = nil
		return next, nil
	}

	if d.partnerID == nil {
		return Delivery{}, errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("cannot override to %s without an assigned partner", newStatus))
	}
	if fee != nil {
		next.fee = fee
	}
	return next, nil
}
