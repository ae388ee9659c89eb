package ports

import (
	"context"

	"artmarket/internal/core/domain/model/audit"
)

// AuditRepository persists administrative override records. Records are
// append-only; nothing in the core updates or deletes them.
type AuditRepository interface {
	// Add appends an override record to the trail.
	Add(ctx context.Context, record *audit.Record) error
}
