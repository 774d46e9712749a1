package account

import (
	"fmt"
	"strings"

	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/money"
)

// Topics name the operation a message belongs to.
const (
	TopicRegistration = "Registration"
	TopicValidation   = "Validation"
	TopicSuccess      = "Success"
	TopicDeposit      = "Deposit"
	TopicWithdrawal   = "Withdrawal"
	TopicTransfer     = "Transfer"
	TopicPassword     = "Password"
	TopicDetails      = "Account Details"
	TopicHistory      = "Transaction History"
)

// OperationType represents the type of balance operation
type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// RegisterForm is the raw registration input, as typed.
type RegisterForm struct {
	FullName      string
	AccountNumber string
	Phone         string
	Password      string
	Deposit       string
}

// Result is what a successful operation reports back.
type Result struct {
	Topic   string
	Message string
	// Account is a snapshot of the caller's account after the operation.
	Account *account.Account
	// Entries are the ledger entries written, in write order.
	Entries []*account.Transaction
}

// Details is the account summary shown to its holder.
type Details struct {
	Holder  string
	Number  int
	Phone   string
	Balance money.Money
}

// Lines returns the summary as label/value lines.
func (d Details) Lines() []string {
	return []string{
		fmt.Sprintf("Holder: %s", d.Holder),
		fmt.Sprintf("Account Number: %d", d.Number),
		fmt.Sprintf("Phone Number: %s", d.Phone),
		fmt.Sprintf("Current Balance: %s", d.Balance.Display()),
		"Security: Password hash is hidden from view.",
	}
}

func (d Details) String() string { return strings.Join(d.Lines(), "\n") }

// operationRequest contains the common parameters for balance operations
type operationRequest struct {
	amountText string
	operation  OperationType
	topic      string
}

// operationHandler applies one balance operation to an account
type operationHandler interface {
	// validate returns the user-facing error for an amount the account cannot take.
	validate(acc *account.Account, amount money.Money) error
	execute(acc *account.Account, amount money.Money) (money.Money, error)
	transactionType() account.TransactionType
	message(amount money.Money) string
}
