// Package auth handles login and the session that follows it.
//
// A session travels in the context.Context handed to every service call. Nothing
// about the logged-in account is kept in package state.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/onlinebanking/pkg/domain"
	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/repository"
	"github.com/amirasaad/onlinebanking/pkg/validation"
	"github.com/google/uuid"
)

// Topics used for login and session errors.
const (
	TopicLogin          = "Login"
	TopicLoginFailed    = "Login Failed"
	TopicLoginSucceeded = "Login Successful"
	TopicAuthentication = "Authentication"
	TopicLogout         = "Logout"
)

type contextKey string

const sessionContextKey contextKey = "session"

// Session identifies the logged-in account.
type Session struct {
	ID            uuid.UUID
	AccountNumber int
	FullName      string
	StartedAt     time.Time
}

// Welcome returns the greeting shown after a successful login.
func (s *Session) Welcome() string {
	return fmt.Sprintf("Welcome, %s.", s.FullName)
}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// FromContext returns the session carried by ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*Session)
	return s, ok && s != nil
}

// RequireSession returns the session carried by ctx, or the error shown to someone
// who is not logged in.
func RequireSession(ctx context.Context) (*Session, error) {
	if s, ok := FromContext(ctx); ok {
		return s, nil
	}
	return nil, domain.NewError(TopicAuthentication, account.ErrNotLoggedIn,
		"You must be logged in to perform this action.")
}

// Service checks credentials against the account store.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new auth Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{uow: uow, logger: logger, now: time.Now}
}

// Login checks the account number and password and opens a session. Both inputs are
// trimmed first.
func (s *Service) Login(ctx context.Context, numberText, password string) (sess *Session, err error) {
	log := s.logger.With("context", "Login")
	numberText = strings.TrimSpace(numberText)
	password = strings.TrimSpace(password)

	err = validation.Sequence(
		validation.Check(func() bool { return validation.Present(numberText, password) },
			domain.NewError(TopicLogin, account.ErrMissingFields, "Please enter account number and password.")),
		validation.Check(func() bool { return validation.Digits(numberText) },
			domain.NewError(TopicLogin, account.ErrInvalidAccountNumber, "Account number must be numeric.")),
	)
	if err != nil {
		log.Debug("Login rejected", "error", err)
		return nil, err
	}

	invalid := domain.NewError(TopicLoginFailed, account.ErrInvalidCredentials, "Invalid account number or password.")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		number, convErr := strconv.Atoi(numberText)
		if convErr != nil {
			return invalid
		}
		acc, findErr := repo.FindByNumber(number)
		if findErr != nil || !acc.CheckPassword(password) {
			return invalid
		}
		sess = &Session{
			ID:            uuid.New(),
			AccountNumber: acc.Number,
			FullName:      acc.FullName,
			StartedAt:     s.now(),
		}
		return nil
	})
	if err != nil {
		sess = nil
		log.Warn("Login failed", "account", numberText, "error", err)
		return
	}
	log.Info("Login successful", "account", sess.AccountNumber, "session", sess.ID)
	return
}

// Logout ends the session carried by ctx and returns the farewell message. The caller
// drops the context afterwards.
func (s *Service) Logout(ctx context.Context) (string, error) {
	sess, err := RequireSession(ctx)
	if err != nil {
		return "", err
	}
	s.logger.Info("Logout", "account", sess.AccountNumber, "session", sess.ID,
		"duration", s.now().Sub(sess.StartedAt).Round(time.Second))
	return fmt.Sprintf("%s, you have been logged out.", sess.FullName), nil
}
