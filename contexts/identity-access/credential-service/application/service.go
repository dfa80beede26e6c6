package application

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	domainerrors "taskhub/contexts/identity-access/credential-service/domain/errors"
	"taskhub/contexts/identity-access/credential-service/domain/token"
	"taskhub/contexts/identity-access/credential-service/ports"
)

const minPasswordLength = 8

type Service struct {
	Repo   ports.Repository
	Hasher ports.PasswordHasher
	Tokens token.Issuer
	Clock  ports.Clock
	IDs    ports.IDGenerator
	Logger *slog.Logger
}

// Register creates an account and returns a fresh identity token.
// Input validation runs before any persistence attempt; the first failing
// field wins.
func (s Service) Register(ctx context.Context, email string, password string) (string, error) {
	email = strings.TrimSpace(email)
	if !isValidEmail(email) {
		return "", domainerrors.ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return "", domainerrors.ErrPasswordTooShort
	}

	if _, err := s.Repo.GetAccountByEmail(ctx, email); err == nil {
		return "", domainerrors.ErrEmailTaken
	} else if !errors.Is(err, domainerrors.ErrAccountNotFound) {
		return "", err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return "", err
	}
	accountID, err := s.IDs.NewID(ctx)
	if err != nil {
		return "", err
	}

	account := ports.Account{
		AccountID:    accountID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.Clock.Now().UTC(),
	}
	// The unique index on email is the real guard; the lookup above only
	// keeps the common duplicate off the bcrypt path. A racing signup
	// surfaces here as ErrEmailTaken from the repository.
	if err := s.Repo.CreateAccount(ctx, account); err != nil {
		return "", err
	}

	resolveLogger(s.Logger).Info("account registered",
		"event", "account_registered",
		"module", "identity-access/credential-service",
		"layer", "application",
		"account_id", account.AccountID,
	)

	return s.Tokens.Mint(account.AccountID)
}

// Authenticate verifies credentials and returns a fresh identity token.
// Unknown email and wrong password report the identical error.
func (s Service) Authenticate(ctx context.Context, email string, password string) (string, error) {
	email = strings.TrimSpace(email)
	if !isValidEmail(email) {
		return "", domainerrors.ErrInvalidEmail
	}
	if password == "" {
		return "", domainerrors.ErrPasswordRequired
	}

	account, err := s.Repo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}
		return "", err
	}
	if err := s.Hasher.Compare(account.PasswordHash, password); err != nil {
		return "", domainerrors.ErrInvalidCredentials
	}

	return s.Tokens.Mint(account.AccountID)
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
