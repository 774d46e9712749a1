package account

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/amirasaad/onlinebanking/pkg/money"
)

// Limits the bank enforces on registration and on load.
const (
	MaxAccounts         = 100
	MaxNameLen          = 100
	MaxPasswordLen      = 20
	MaxPhoneLen         = 15
	AccountNumberDigits = 6
)

// MinimumOpeningDeposit is the smallest initial deposit accepted at registration.
var MinimumOpeningDeposit = money.Must("10.00")

// Account is a customer's account record. It is mutated in place and never deleted.
//
// Invariants:
//   - Number uniquely identifies the account.
//   - FullName, Password and Phone contain no whitespace (the account file is
//     whitespace-separated).
//   - Balance never becomes negative through a validated operation.
type Account struct {
	FullName string
	Number   int
	Password string
	Balance  money.Money
	Phone    string
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	fullName string
	number   int
	password string
	balance  money.Money
	phone    string
}

// New creates a new Builder with a zero balance.
func New() *Builder {
	return &Builder{balance: money.Zero()}
}

// WithFullName sets the holder's name.
func (b *Builder) WithFullName(name string) *Builder {
	b.fullName = name
	return b
}

// WithNumber sets the account number.
func (b *Builder) WithNumber(n int) *Builder {
	b.number = n
	return b
}

// WithPassword sets the plaintext password.
func (b *Builder) WithPassword(pw string) *Builder {
	b.password = pw
	return b
}

// WithPhone sets the phone number.
func (b *Builder) WithPhone(phone string) *Builder {
	b.phone = phone
	return b
}

// WithBalance sets the opening balance.
func (b *Builder) WithBalance(balance money.Money) *Builder {
	b.balance = balance
	return b
}

// Build validates the record invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if !ValidFullName(b.fullName) {
		return nil, ErrInvalidFullName
	}
	if b.number < 0 || b.number > 999999 {
		return nil, ErrInvalidAccountNumber
	}
	if !ValidPhone(b.phone) {
		return nil, ErrInvalidPhone
	}
	if !ValidPassword(b.password) {
		return nil, ErrInvalidPassword
	}
	if b.balance.IsNegative() {
		return nil, ErrInsufficientFunds
	}
	return &Account{
		FullName: b.fullName,
		Number:   b.number,
		Password: b.password,
		Balance:  b.balance,
		Phone:    b.phone,
	}, nil
}

// NewAccountFromData creates an Account from raw data (used for file hydration or test fixtures).
// This bypasses invariants and should only be used for repository hydration or tests.
func NewAccountFromData(fullName string, number int, password string, balance money.Money, phone string) *Account {
	return &Account{
		FullName: fullName,
		Number:   number,
		Password: password,
		Balance:  balance,
		Phone:    phone,
	}
}

// Clone returns a detached copy.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

// CheckPassword compares plaintext passwords, case-sensitively.
func (a *Account) CheckPassword(pw string) bool {
	return a.Password == pw
}

func (a *Account) validateAmount(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrTransactionAmountMustBePositive
	}
	return nil
}

// ValidateDeposit checks all business invariants for a deposit operation.
func (a *Account) ValidateDeposit(amount money.Money) error {
	return a.validateAmount(amount)
}

// ValidateWithdraw checks that the amount is positive and covered by the balance.
func (a *Account) ValidateWithdraw(amount money.Money) error {
	if err := a.validateAmount(amount); err != nil {
		return err
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateTransfer ensures that a funds transfer from this account to another is valid.
func (a *Account) ValidateTransfer(dest *Account, amount money.Money) error {
	if a == nil || dest == nil {
		return ErrNilAccount
	}
	if a.Number == dest.Number {
		return ErrCannotTransferToSameAccount
	}
	return a.ValidateWithdraw(amount)
}

// Deposit credits the account and returns the new balance.
func (a *Account) Deposit(amount money.Money) (money.Money, error) {
	if err := a.ValidateDeposit(amount); err != nil {
		return money.Money{}, err
	}
	bal, err := a.Balance.Add(amount)
	if err != nil {
		return money.Money{}, err
	}
	a.Balance = bal
	return bal, nil
}

// Withdraw debits the account and returns the new balance.
func (a *Account) Withdraw(amount money.Money) (money.Money, error) {
	if err := a.ValidateWithdraw(amount); err != nil {
		return money.Money{}, err
	}
	bal, err := a.Balance.Sub(amount)
	if err != nil {
		return money.Money{}, err
	}
	a.Balance = bal
	return bal, nil
}

// ValidFullName reports whether name is a single non-empty token of at most MaxNameLen runes.
func ValidFullName(name string) bool {
	return name != "" && !hasSpace(name) && utf8.RuneCountInString(name) <= MaxNameLen
}

// ValidPhone reports whether phone is a non-empty token of at most MaxPhoneLen runes.
func ValidPhone(phone string) bool {
	return phone != "" && !hasSpace(phone) && utf8.RuneCountInString(phone) <= MaxPhoneLen
}

// ValidPassword reports whether pw is a non-empty token of at most MaxPasswordLen runes.
func ValidPassword(pw string) bool {
	return pw != "" && !hasSpace(pw) && utf8.RuneCountInString(pw) <= MaxPasswordLen
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
