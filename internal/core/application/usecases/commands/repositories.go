// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"artmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CatalogOrderRepoFactory provides access to the catalog order repository
	// within a transaction.
	CatalogOrderRepoFactory interface {
		CatalogOrderRepository() ports.CatalogOrderRepository
	}

	// CommissionOrderRepoFactory provides access to the commission order
	// repository within a transaction.
	CommissionOrderRepoFactory interface {
		CommissionOrderRepository() ports.CommissionOrderRepository
	}

	// AuditRepoFactory provides access to the override audit trail within a
	// transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// OrderUoW manages transactions for delivery transitions. Commands resolve
	// an order reference to either kind, so both repositories ride along.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ord, err := getOrderByRef(ctx, uow, ref)
	//   // ... transition and persist
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		CatalogOrderRepoFactory
		CommissionOrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AuditUoW manages transactions that pair a delivery transition with an
	// audit record, so both commit or neither does.
	AuditUoW interface {
		OrderUoW
		AuditRepoFactory
	}

	// AuditUoWFactory creates new audit unit of work instances.
	AuditUoWFactory interface {
		Create() AuditUoW
	}
)
