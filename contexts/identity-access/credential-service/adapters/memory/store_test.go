package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "taskhub/contexts/identity-access/credential-service/domain/errors"
	"taskhub/contexts/identity-access/credential-service/ports"
)

func TestStoreCreateAndLookup(t *testing.T) {
	store := NewStore()
	account := ports.Account{
		AccountID:    "account-1",
		Email:        "a@x.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}

	if err := store.CreateAccount(context.Background(), account); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := store.GetAccountByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.AccountID != "account-1" {
		t.Fatalf("expected account-1, got %q", found.AccountID)
	}
}

func TestStoreRejectsDuplicateEmail(t *testing.T) {
	store := NewStore()
	first := ports.Account{AccountID: "account-1", Email: "a@x.com"}
	second := ports.Account{AccountID: "account-2", Email: "a@x.com"}

	if err := store.CreateAccount(context.Background(), first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := store.CreateAccount(context.Background(), second); !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestStoreEmailLookupIsCaseSensitive(t *testing.T) {
	store := NewStore()
	if err := store.CreateAccount(context.Background(), ports.Account{AccountID: "account-1", Email: "a@x.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := store.GetAccountByEmail(context.Background(), "A@x.com"); !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("expected not found for different casing, got %v", err)
	}
}
