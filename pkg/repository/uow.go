package repository

import (
	"context"
)

// UnitOfWork defines the contract for grouped work and repository access.
//
// Do runs the given function with a UnitOfWork for repository access. The flat-file
// implementation has no rollback: writes made before a failure stay on disk.
type UnitOfWork interface {
	// Do executes the given function within a work boundary.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// Type-safe repository access methods
	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
}
