package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/onlinebanking/pkg/repository"
)

// UoW groups the account store and the ledger behind one access point.
//
// The two files are written independently: there is no rollback across them, and a
// failure part-way through Do leaves earlier writes on disk.
type UoW struct {
	accounts repository.AccountRepository
	ledger   repository.TransactionRepository
}

// NewUoW creates a new UoW over the given repositories.
func NewUoW(accounts repository.AccountRepository, ledger repository.TransactionRepository) *UoW {
	return &UoW{accounts: accounts, ledger: ledger}
}

var _ repository.UnitOfWork = (*UoW)(nil)

// Do runs fn with this UoW. Callers are expected to be sequential.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(u)
}

// AccountRepository returns the account store.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	if u.accounts == nil {
		return nil, errors.New("account repository not configured")
	}
	return u.accounts, nil
}

// TransactionRepository returns the ledger.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	if u.ledger == nil {
		return nil, errors.New("transaction repository not configured")
	}
	return u.ledger, nil
}

// Load reads both files into memory and returns their reports, accounts first.
func (u *UoW) Load(ctx context.Context) ([]repository.LoadReport, error) {
	accounts, err := u.AccountRepository()
	if err != nil {
		return nil, err
	}
	ledger, err := u.TransactionRepository()
	if err != nil {
		return nil, err
	}
	accReport, err := accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	txReport, err := ledger.Load(ctx)
	if err != nil {
		return []repository.LoadReport{accReport}, err
	}
	return []repository.LoadReport{accReport, txReport}, nil
}
