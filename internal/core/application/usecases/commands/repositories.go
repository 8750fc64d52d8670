// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: authorization, validation, transaction
// management and persistence. Authorization always runs before the first storage call.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// UserUoW manages transactions for account-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// CatalogUoW manages transactions for reference table operations.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW manages transactions across packages, their history and the rows they
	// reference. Package and ledger commands use it because every write checks
	// referenced users and catalog entries in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pkg, err := uow.PackageRepository().Get(ctx, tn)
	//   id, err := uow.HistoryRepository().Add(ctx, record)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PackageRepoFactory
		HistoryRepoFactory
		UserRepoFactory
		CatalogRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
