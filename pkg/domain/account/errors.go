package account

import (
	"fmt"

	"github.com/amirasaad/onlinebanking/pkg/domain"
)

var (
	// ErrCapacityReached is returned when the bank already holds MaxAccounts accounts.
	ErrCapacityReached = fmt.Errorf("%w: account capacity reached", domain.ErrValidation)

	// ErrMissingFields is returned when a required form field is blank.
	ErrMissingFields = fmt.Errorf("%w: missing fields", domain.ErrValidation)

	// ErrInvalidFullName is returned when a name contains whitespace or is too long.
	ErrInvalidFullName = fmt.Errorf("%w: invalid full name", domain.ErrValidation)

	// ErrInvalidAccountNumber is returned when an account number is not a 6-digit number.
	ErrInvalidAccountNumber = fmt.Errorf("%w: invalid account number", domain.ErrValidation)

	// ErrAccountExists is returned when registering a number that is already taken.
	ErrAccountExists = fmt.Errorf("%w: account number taken", domain.ErrAlreadyExists)

	// ErrInvalidPhone is returned when a phone number contains whitespace or is too long.
	ErrInvalidPhone = fmt.Errorf("%w: invalid phone number", domain.ErrValidation)

	// ErrInvalidAmount is returned when an amount cannot be read as a number.
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", domain.ErrValidation)

	// ErrDepositBelowMinimum is returned when an opening deposit is below MinimumOpeningDeposit.
	ErrDepositBelowMinimum = fmt.Errorf("%w: opening deposit below minimum", domain.ErrValidation)

	// ErrInvalidPassword is returned when a password is too long or contains whitespace.
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", domain.ErrValidation)

	// ErrTransactionAmountMustBePositive is returned when a transaction amount is not positive.
	ErrTransactionAmountMustBePositive = fmt.Errorf("%w: transaction amount must be positive", domain.ErrValidation)

	// ErrInsufficientFunds is returned when an account has insufficient funds for a withdrawal or transfer.
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", domain.ErrValidation)

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("%w: account not found", domain.ErrNotFound)

	// ErrCannotTransferToSameAccount is returned when a transfer is attempted from an account to itself.
	ErrCannotTransferToSameAccount = fmt.Errorf("%w: cannot transfer to same account", domain.ErrValidation)

	// ErrNilAccount is returned when a nil account is provided to a transfer or other operation.
	ErrNilAccount = fmt.Errorf("%w: nil account", domain.ErrValidation)

	// ErrInvalidCredentials is returned when the account number or password is wrong.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)

	// ErrNotLoggedIn is returned when an operation needs a session and none is present.
	ErrNotLoggedIn = fmt.Errorf("%w: not logged in", domain.ErrUnauthorized)

	// ErrWrongPassword is returned when the current password given for a change is wrong.
	ErrWrongPassword = fmt.Errorf("%w: current password incorrect", domain.ErrUnauthorized)

	// ErrPasswordConfirmation is returned when the new password and its confirmation differ.
	ErrPasswordConfirmation = fmt.Errorf("%w: passwords do not match", domain.ErrValidation)

	// ErrNoTransactions is returned when an account has no ledger entries.
	ErrNoTransactions = fmt.Errorf("%w: no transactions", domain.ErrNotFound)
)
