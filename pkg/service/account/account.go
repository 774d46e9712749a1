// Package account provides the banking operations behind the console: registration,
// deposits, withdrawals, transfers, password changes, and account queries.
//
// Every operation checks its input in a fixed order and stops at the first failure,
// returning a *domain.Error that carries the message to show. Nothing is written when
// a check fails.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/onlinebanking/pkg/domain"
	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/money"
	"github.com/amirasaad/onlinebanking/pkg/repository"
	"github.com/amirasaad/onlinebanking/pkg/service/auth"
	"github.com/amirasaad/onlinebanking/pkg/validation"
)

// Service provides business logic for account operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for ledger timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new Service with the provided dependencies.
func NewService(uow repository.UnitOfWork, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{uow: uow, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register opens a new account and records its opening deposit. All fields are
// trimmed before they are checked.
func (s *Service) Register(ctx context.Context, form RegisterForm) (result *Result, err error) {
	name := strings.TrimSpace(form.FullName)
	numberText := strings.TrimSpace(form.AccountNumber)
	phone := strings.TrimSpace(form.Phone)
	password := strings.TrimSpace(form.Password)
	depositText := strings.TrimSpace(form.Deposit)

	logger := s.logger.With("operation", "register", "account", numberText)
	defer func() {
		if err != nil {
			s.logFailure(logger, "Register failed", err)
		} else {
			logger.Info("Register successful")
		}
	}()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, txRepo, err := s.getRepositories(uow, logger)
		if err != nil {
			return err
		}

		var (
			number  int
			deposit money.Money
		)
		err = validation.Sequence(
			validation.Check(func() bool { return accountRepo.Count() < account.MaxAccounts },
				domain.NewError(TopicRegistration, account.ErrCapacityReached, "The bank has reached its account capacity.")),
			validation.Check(func() bool { return validation.Present(name, numberText, phone, password, depositText) },
				domain.NewError(TopicValidation, account.ErrMissingFields, "Please complete all fields.")),
			validation.Check(func() bool { return validation.Token(name, account.MaxNameLen) },
				domain.NewError(TopicValidation, account.ErrInvalidFullName,
					fmt.Sprintf("Full name must be a single word up to %d characters.", account.MaxNameLen))),
			validation.Check(func() bool { return validation.ExactDigits(numberText, account.AccountNumberDigits) },
				domain.NewError(TopicValidation, account.ErrInvalidAccountNumber, "Account number must be a 6-digit number.")),
			func() error {
				number, _ = strconv.Atoi(numberText)
				if _, err := accountRepo.FindByNumber(number); err == nil {
					return domain.NewError(TopicValidation, account.ErrAccountExists, "That account number already exists.")
				}
				return nil
			},
			validation.Check(func() bool { return validation.Token(phone, account.MaxPhoneLen) },
				domain.NewError(TopicValidation, account.ErrInvalidPhone,
					fmt.Sprintf("Phone number must be up to %d characters with no spaces.", account.MaxPhoneLen))),
			func() error {
				m, err := money.Parse(depositText)
				if err != nil {
					return domain.NewError(TopicValidation, account.ErrInvalidAmount, "Deposit must be a valid number.")
				}
				deposit = m
				return nil
			},
			validation.Check(func() bool { return deposit.GreaterThanOrEqual(account.MinimumOpeningDeposit) },
				domain.NewError(TopicValidation, account.ErrDepositBelowMinimum, "Initial deposit must be at least ZMW 10.00.")),
			validation.Check(func() bool { return validation.MaxLen(password, account.MaxPasswordLen) },
				domain.NewError(TopicValidation, account.ErrInvalidPassword,
					fmt.Sprintf("Password must be up to %d characters.", account.MaxPasswordLen))),
			validation.Check(func() bool { return validation.Token(password, account.MaxPasswordLen) },
				domain.NewError(TopicValidation, account.ErrInvalidPassword, "Password cannot contain spaces.")),
		)
		if err != nil {
			return err
		}

		acc, err := account.New().
			WithFullName(name).
			WithNumber(number).
			WithPassword(password).
			WithPhone(phone).
			WithBalance(deposit).
			Build()
		if err != nil {
			return err
		}
		if err = accountRepo.Register(ctx, acc); err != nil {
			return fmt.Errorf("register: %w", err)
		}
		tx := account.NewTransaction(acc.Number, account.TypeInitialDeposit, deposit, deposit, s.now())
		if err = txRepo.Append(ctx, tx); err != nil {
			return fmt.Errorf("register: record opening deposit: %w", err)
		}
		result = &Result{
			Topic:   TopicSuccess,
			Message: fmt.Sprintf("Welcome, %s! Your account %s is active.\nPhone: %s", name, numberText, phone),
			Account: acc.Clone(),
			Entries: []*account.Transaction{tx},
		}
		return nil
	})
	if err != nil {
		result = nil
	}
	return
}

// Deposit credits the logged-in account.
func (s *Service) Deposit(ctx context.Context, amountText string) (*Result, error) {
	return s.executeOperation(ctx, operationRequest{
		amountText: amountText,
		operation:  OperationDeposit,
		topic:      TopicDeposit,
	}, depositHandler{})
}

// Withdraw debits the logged-in account. The balance must cover the amount.
func (s *Service) Withdraw(ctx context.Context, amountText string) (*Result, error) {
	return s.executeOperation(ctx, operationRequest{
		amountText: amountText,
		operation:  OperationWithdraw,
		topic:      TopicWithdrawal,
	}, withdrawHandler{})
}

// Transfer moves funds from the logged-in account to another account. Both balances
// are persisted together, then one ledger entry is written for each side.
func (s *Service) Transfer(ctx context.Context, recipientText, amountText string) (result *Result, err error) {
	sess, err := auth.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With("session", sess.ID, "account", sess.AccountNumber, "operation", "transfer", "recipient", recipientText)
	defer func() {
		if err != nil {
			s.logFailure(logger, "Transfer failed", err)
		} else {
			logger.Info("Transfer successful", "amount", result.Entries[0].Amount.Fixed())
		}
	}()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, txRepo, err := s.getRepositories(uow, logger)
		if err != nil {
			return err
		}
		sender, err := currentAccount(ctx, accountRepo)
		if err != nil {
			return err
		}

		var (
			recipient *account.Account
			amount    money.Money
		)
		err = validation.Sequence(
			validation.Check(func() bool { return validation.Digits(recipientText) },
				domain.NewError(TopicTransfer, account.ErrInvalidAccountNumber, "Recipient account number must be numeric.")),
			func() error {
				n, convErr := strconv.Atoi(recipientText)
				if convErr == nil {
					recipient, convErr = accountRepo.FindByNumber(n)
				}
				if convErr != nil {
					return domain.NewError(TopicTransfer, account.ErrAccountNotFound, "Recipient account not found.")
				}
				return nil
			},
			validation.Check(func() bool { return recipient.Number != sender.Number },
				domain.NewError(TopicTransfer, account.ErrCannotTransferToSameAccount, "Please use Deposit/Withdrawal for self-account.")),
			parseAmountRule(&amount, amountText, TopicTransfer),
			positiveRule(func() bool { return amount.IsPositive() }, TopicTransfer),
			validation.Check(func() bool { return sender.ValidateTransfer(recipient, amount) == nil },
				domain.NewError(TopicTransfer, account.ErrInsufficientFunds, "Insufficient funds for this transfer.")),
		)
		if err != nil {
			return err
		}

		senderBalance, err := sender.Withdraw(amount)
		if err != nil {
			return err
		}
		recipientBalance, err := recipient.Deposit(amount)
		if err != nil {
			return err
		}
		err = accountRepo.UpdateBalances(ctx,
			repository.BalanceUpdate{Number: sender.Number, Balance: senderBalance},
			repository.BalanceUpdate{Number: recipient.Number, Balance: recipientBalance},
		)
		if err != nil {
			return fmt.Errorf("transfer: update balances: %w", err)
		}

		at := s.now()
		sent := account.NewTransaction(sender.Number, account.TypeTransfer, amount, senderBalance, at).
			WithRecipient(recipient.Number)
		received := account.NewTransaction(recipient.Number, account.TypeTransferReceived, amount, recipientBalance, at).
			WithRecipient(sender.Number)
		for _, tx := range []*account.Transaction{sent, received} {
			if err = txRepo.Append(ctx, tx); err != nil {
				return fmt.Errorf("transfer: record transaction: %w", err)
			}
		}
		result = &Result{
			Topic:   TopicTransfer,
			Message: fmt.Sprintf("%s transferred to %s (Acc: %d).", amount.Display(), recipient.FullName, recipient.Number),
			Account: sender,
			Entries: []*account.Transaction{sent, received},
		}
		return nil
	})
	if err != nil {
		result = nil
	}
	return
}

// ChangePassword replaces the logged-in account's password. Inputs are compared as
// typed, without trimming.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmPassword string) (result *Result, err error) {
	sess, err := auth.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With("session", sess.ID, "account", sess.AccountNumber, "operation", "change_password")
	defer func() {
		if err != nil {
			s.logFailure(logger, "ChangePassword failed", err)
		} else {
			logger.Info("ChangePassword successful")
		}
	}()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acc, err := currentAccount(ctx, accountRepo)
		if err != nil {
			return err
		}
		err = validation.Sequence(
			validation.Check(func() bool { return validation.Present(oldPassword, newPassword, confirmPassword) },
				domain.NewError(TopicPassword, account.ErrMissingFields, "All fields are required.")),
			validation.Check(func() bool { return acc.CheckPassword(oldPassword) },
				domain.NewError(TopicPassword, account.ErrWrongPassword, "Current password is incorrect.")),
			validation.Check(func() bool { return newPassword == confirmPassword },
				domain.NewError(TopicPassword, account.ErrPasswordConfirmation, "New passwords did not match.")),
			validation.Check(func() bool { return validation.MaxLen(newPassword, account.MaxPasswordLen) },
				domain.NewError(TopicPassword, account.ErrInvalidPassword,
					fmt.Sprintf("Password must be up to %d characters.", account.MaxPasswordLen))),
			validation.Check(func() bool { return validation.Token(newPassword, account.MaxPasswordLen) },
				domain.NewError(TopicPassword, account.ErrInvalidPassword, "Password cannot contain spaces.")),
		)
		if err != nil {
			return err
		}
		if err = accountRepo.UpdatePassword(ctx, acc.Number, newPassword); err != nil {
			return fmt.Errorf("change password: %w", err)
		}
		acc.Password = newPassword
		result = &Result{Topic: TopicPassword, Message: "Password updated successfully.", Account: acc}
		return nil
	})
	if err != nil {
		result = nil
	}
	return
}

// Details returns the logged-in account's summary.
func (s *Service) Details(ctx context.Context) (details Details, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acc, err := currentAccount(ctx, accountRepo)
		if err != nil {
			return err
		}
		details = Details{Holder: acc.FullName, Number: acc.Number, Phone: acc.Phone, Balance: acc.Balance}
		return nil
	})
	return
}

// History returns the logged-in account's ledger entries, newest first.
func (s *Service) History(ctx context.Context) (entries []*account.Transaction, err error) {
	sess, err := auth.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		entries = txRepo.HistoryFor(sess.AccountNumber)
		if len(entries) == 0 {
			return domain.NewError(TopicHistory, account.ErrNoTransactions, "No transactions found for this account.")
		}
		return nil
	})
	if err != nil {
		entries = nil
	}
	return
}
