package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control over the repositories it hands out;
// client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CatalogOrderRepository returns a repository bound to the current
	// transaction.
	CatalogOrderRepository() CatalogOrderRepository

	// CommissionOrderRepository returns a repository bound to the current
	// transaction.
	CommissionOrderRepository() CommissionOrderRepository

	// AuditRepository returns the override audit trail bound to the current
	// transaction, so an override and its audit record commit together.
	AuditRepository() AuditRepository
}
