package account

import (
	"time"

	"github.com/amirasaad/onlinebanking/pkg/money"
)

// TimestampLayout is the ledger timestamp format. Entries sort chronologically as plain strings.
const TimestampLayout = "2006-01-02 15:04:05"

// TransactionType names a balance-affecting event.
type TransactionType string

// Transaction types, spelled exactly as they appear in the ledger file.
const (
	TypeInitialDeposit   TransactionType = "Initial Deposit"
	TypeDeposit          TransactionType = "Deposit"
	TypeWithdrawal       TransactionType = "Withdrawal"
	TypeTransfer         TransactionType = "Transfer"
	TypeTransferReceived TransactionType = "Transfer Received"
)

// IsCredit reports whether the entry added money to its account.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TypeInitialDeposit, TypeDeposit, TypeTransferReceived:
		return true
	}
	return false
}

func (t TransactionType) String() string { return string(t) }

// Transaction is one immutable ledger entry.
type Transaction struct {
	AccountNumber int
	Type          TransactionType
	Amount        money.Money
	BalanceAfter  money.Money // owner's balance once the operation completed
	Timestamp     string
	Recipient     *int // counterparty, transfers only
}

// NewTransaction creates a ledger entry stamped at the given time.
func NewTransaction(number int, typ TransactionType, amount, balanceAfter money.Money, at time.Time) *Transaction {
	return &Transaction{
		AccountNumber: number,
		Type:          typ,
		Amount:        amount,
		BalanceAfter:  balanceAfter,
		Timestamp:     at.Format(TimestampLayout),
	}
}

// WithRecipient sets the counterparty account number.
func (t *Transaction) WithRecipient(n int) *Transaction {
	t.Recipient = &n
	return t
}

// HasRecipient reports whether a counterparty is recorded.
func (t *Transaction) HasRecipient() bool {
	return t.Recipient != nil
}
