// Package audit provides the record type for administrative status overrides.
// Overrides bypass the delivery state machine's monotonic sequence, so each
// one is written to a dedicated trail, distinct from normal transitions, and
// normal-path analytics never see them.
package audit

import (
	"errors"
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through
// NewRecord.
var ErrRecordIsNotConstructed = errors.New("audit Record must be created via NewRecord constructor")

// Record captures one administrative delivery-status override: who forced it,
// on which order, from and to which status, the corrected fee if any, and the
// operator-supplied reason.
type Record struct {
	id         uuid.UUID
	actorID    int64
	orderRef   kernel.OrderRef
	fromStatus order.DeliveryStatus
	toStatus   order.DeliveryStatus
	fee        *kernel.Money
	reason     string
	createdAt  time.Time

	isConstructed bool
}

// NewRecord creates an audit record for an override applied at createdAt.
// A non-empty reason is required; overrides without operator justification
// are not accepted.
func NewRecord(
	actorID int64,
	orderRef kernel.OrderRef,
	fromStatus order.DeliveryStatus,
	toStatus order.DeliveryStatus,
	fee *kernel.Money,
	reason string,
	createdAt time.Time,
) (*Record, error) {
	if actorID <= 0 {
		return nil, errs.NewValueIsInvalidError("actorId")
	}
	if err := orderRef.Validate(); err != nil {
		return nil, err
	}
	if err := fromStatus.Validate(); err != nil {
		return nil, err
	}
	if err := toStatus.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Record{
		id:            uuid.New(),
		actorID:       actorID,
		orderRef:      orderRef,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		fee:           fee,
		reason:        reason,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs a record from persistence.
func RestoreRecord(
	id uuid.UUID,
	actorID int64,
	orderRef kernel.OrderRef,
	fromStatus order.DeliveryStatus,
	toStatus order.DeliveryStatus,
	fee *kernel.Money,
	reason string,
	createdAt time.Time,
) (*Record, error) {
	record, err := NewRecord(actorID, orderRef, fromStatus, toStatus, fee, reason, createdAt)
	if err != nil {
		return nil, err
	}
	record.id = id
	return record, nil
}

// Validate ensures the record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() uuid.UUID { return r.id }

// ActorID returns the operator who forced the override.
func (r *Record) ActorID() int64 { return r.actorID }

// OrderRef returns the overridden order's identity.
func (r *Record) OrderRef() kernel.OrderRef { return r.orderRef }

// FromStatus returns the status before the override.
func (r *Record) FromStatus() order.DeliveryStatus { return r.fromStatus }

// ToStatus returns the status the override forced.
func (r *Record) ToStatus() order.DeliveryStatus { return r.toStatus }

// Fee returns the corrected fee, or nil when the override left it alone.
func (r *Record) Fee() *kernel.Money { return r.fee }

// Reason returns the operator-supplied justification.
func (r *Record) Reason() string { return r.reason }

// CreatedAt returns when the override was applied.
func (r *Record) CreatedAt() time.Time { return r.createdAt }
