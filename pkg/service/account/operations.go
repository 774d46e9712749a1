package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/onlinebanking/pkg/domain"
	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/money"
	"github.com/amirasaad/onlinebanking/pkg/repository"
	"github.com/amirasaad/onlinebanking/pkg/service/auth"
	"github.com/amirasaad/onlinebanking/pkg/validation"
)

type depositHandler struct{}

func (depositHandler) validate(*account.Account, money.Money) error {
	return nil
}

func (depositHandler) execute(acc *account.Account, amount money.Money) (money.Money, error) {
	return acc.Deposit(amount)
}

func (depositHandler) transactionType() account.TransactionType { return account.TypeDeposit }

func (depositHandler) message(amount money.Money) string {
	return fmt.Sprintf("%s added to your account.", amount.Display())
}

type withdrawHandler struct{}

func (withdrawHandler) validate(acc *account.Account, amount money.Money) error {
	if acc.Balance.LessThan(amount) {
		return domain.NewError(TopicWithdrawal, account.ErrInsufficientFunds,
			fmt.Sprintf("Insufficient funds. Available balance is %s.", acc.Balance.Display()))
	}
	return nil
}

func (withdrawHandler) execute(acc *account.Account, amount money.Money) (money.Money, error) {
	return acc.Withdraw(amount)
}

func (withdrawHandler) transactionType() account.TransactionType { return account.TypeWithdrawal }

func (withdrawHandler) message(amount money.Money) string {
	return fmt.Sprintf("%s withdrawn successfully.", amount.Display())
}

// executeOperation is the core method that handles both deposit and withdraw operations
// using the strategy pattern.
func (s *Service) executeOperation(ctx context.Context, req operationRequest, handler operationHandler) (result *Result, err error) {
	sess, err := auth.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With(
		"session", sess.ID,
		"account", sess.AccountNumber,
		"operation", req.operation,
	)
	logger.Debug("executeOperation started")
	defer func() {
		if err != nil {
			s.logFailure(logger, "executeOperation failed", err)
		} else {
			logger.Info("executeOperation successful", "amount", result.Entries[0].Amount.Fixed())
		}
	}()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, txRepo, err := s.getRepositories(uow, logger)
		if err != nil {
			return err
		}
		acc, err := currentAccount(ctx, accountRepo)
		if err != nil {
			return err
		}

		var amount money.Money
		err = validation.Sequence(
			parseAmountRule(&amount, req.amountText, req.topic),
			positiveRule(func() bool { return amount.IsPositive() }, req.topic),
			func() error { return handler.validate(acc, amount) },
		)
		if err != nil {
			return err
		}

		balance, err := handler.execute(acc, amount)
		if err != nil {
			return err
		}
		if err = accountRepo.UpdateBalance(ctx, acc.Number, balance); err != nil {
			return fmt.Errorf("%s: update balance: %w", req.operation, err)
		}
		tx := account.NewTransaction(acc.Number, handler.transactionType(), amount, balance, s.now())
		if err = txRepo.Append(ctx, tx); err != nil {
			return fmt.Errorf("%s: record transaction: %w", req.operation, err)
		}
		result = &Result{
			Topic:   req.topic,
			Message: handler.message(amount),
			Account: acc,
			Entries: []*account.Transaction{tx},
		}
		return nil
	})
	if err != nil {
		result = nil
	}
	return
}

// getRepositories retrieves the account and transaction repositories from the unit of work
func (s *Service) getRepositories(uow repository.UnitOfWork, logger *slog.Logger) (repository.AccountRepository, repository.TransactionRepository, error) {
	accountRepo, err := uow.AccountRepository()
	if err != nil {
		logger.Error("getRepositories failed: AccountRepository error", "error", err)
		return nil, nil, err
	}
	txRepo, err := uow.TransactionRepository()
	if err != nil {
		logger.Error("getRepositories failed: TransactionRepository error", "error", err)
		return nil, nil, err
	}
	return accountRepo, txRepo, nil
}

// currentAccount loads the logged-in account. An account that has disappeared from
// the store ends the session's authority.
func currentAccount(ctx context.Context, repo repository.AccountRepository) (*account.Account, error) {
	sess, err := auth.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := repo.FindByNumber(sess.AccountNumber)
	if err != nil {
		return nil, domain.NewError(auth.TopicAuthentication, account.ErrNotLoggedIn,
			"You must be logged in to perform this action.")
	}
	return acc, nil
}

// parseAmountRule reads text into *dst.
func parseAmountRule(dst *money.Money, text, topic string) validation.Rule {
	return func() error {
		m, err := money.Parse(text)
		if err != nil {
			return domain.NewError(topic, account.ErrInvalidAmount, "Please enter a valid amount.")
		}
		*dst = m
		return nil
	}
}

// positiveRule fails unless positive reports true. positive must read the amount
// when called, after parseAmountRule has run.
func positiveRule(positive func() bool, topic string) validation.Rule {
	return validation.Check(positive,
		domain.NewError(topic, account.ErrTransactionAmountMustBePositive, "Amount must be positive."))
}

// logFailure logs user-facing rejections quietly and everything else as an error.
func (s *Service) logFailure(logger *slog.Logger, msg string, err error) {
	if _, ok := domain.AsError(err); ok {
		logger.Debug(msg, "error", err)
		return
	}
	logger.Error(msg, "error", err)
}
