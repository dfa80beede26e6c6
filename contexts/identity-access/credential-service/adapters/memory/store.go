package memory

import (
	"context"
	"strings"
	"sync"

	domainerrors "taskhub/contexts/identity-access/credential-service/domain/errors"
	"taskhub/contexts/identity-access/credential-service/ports"
)

// Store is an in-memory account repository. Email lookup is case-sensitive,
// matching the persistent store's contract.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]ports.Account
}

func NewStore() *Store {
	return &Store{byEmail: make(map[string]ports.Account)}
}

func (s *Store) CreateAccount(ctx context.Context, account ports.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[account.Email]; exists {
		return domainerrors.ErrEmailTaken
	}
	s.byEmail[account.Email] = account
	return nil
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (ports.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byEmail[strings.TrimSpace(email)]
	if !ok {
		return ports.Account{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}
