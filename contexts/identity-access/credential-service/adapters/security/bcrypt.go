package security

import "golang.org/x/crypto/bcrypt"

const (
	// DefaultCost keeps verification in the tens of milliseconds.
	DefaultCost = 10
	// FastCost is for in-memory wiring where hash strength is irrelevant.
	FastCost = bcrypt.MinCost
)

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
