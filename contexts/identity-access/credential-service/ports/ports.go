package ports

import (
	"context"
	"time"
)

// Account is a registered identity. The password is held only as a salted
// one-way hash; plaintext never crosses this boundary.
type Account struct {
	AccountID    string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Repository persists accounts. Email is the sole authentication key and is
// unique (case-sensitive, as stored).
type Repository interface {
	CreateAccount(ctx context.Context, account Account) error
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
