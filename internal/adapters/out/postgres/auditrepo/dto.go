// Package auditrepo persists the administrative override audit trail. The
// trail is append-only; overrides are recorded in the same transaction as the
// transition they describe.
package auditrepo

import (
	"time"

	"artmarket/internal/core/domain/model/audit"
	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// AuditRecordDTO represents the database structure for override audit records.
type AuditRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID    int64     `gorm:"index"`
	OrderID    int64     `gorm:"index:idx_audit_order"`
	OrderKind  int       `gorm:"index:idx_audit_order"`
	FromStatus int       ``
	ToStatus   int       ``
	FeeCents   *int64    ``
	Reason     string    ``
	CreatedAt  time.Time ``
}

// TableName specifies the database table name for audit records.
func (AuditRecordDTO) TableName() string {
	return "audit_records"
}

func fromDomain(record *audit.Record) AuditRecordDTO {
	var feeCents *int64
	if fee := record.Fee(); fee != nil {
		cents := fee.Cents()
		feeCents = &cents
	}

	return AuditRecordDTO{
		ID:         record.ID(),
		ActorID:    record.ActorID(),
		OrderID:    record.OrderRef().ID(),
		OrderKind:  int(record.OrderRef().Kind()),
		FromStatus: int(record.FromStatus()),
		ToStatus:   int(record.ToStatus()),
		FeeCents:   feeCents,
		Reason:     record.Reason(),
		CreatedAt:  record.CreatedAt(),
	}
}

func toDomain(dto AuditRecordDTO) (*audit.Record, error) {
	ref, err := kernel.NewOrderRef(dto.OrderID, kernel.OrderKind(dto.OrderKind))
	if err != nil {
		return nil, err
	}

	var fee *kernel.Money
	if dto.FeeCents != nil {
		money, feeErr := kernel.NewMoney(*dto.FeeCents)
		if feeErr != nil {
			return nil, feeErr
		}
		fee = &money
	}

	return audit.RestoreRecord(dto.ID, dto.ActorID, ref,
		order.DeliveryStatus(dto.FromStatus), order.DeliveryStatus(dto.ToStatus),
		fee, dto.Reason, dto.CreatedAt)
}
