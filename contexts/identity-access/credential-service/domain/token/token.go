package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers missing, malformed, badly signed, and expired
// tokens alike. The gate never tells a caller which check failed.
var ErrInvalidToken = errors.New("Token is not valid")

// Claims carried by an identity token. The account id is duplicated into
// user_id next to the registered sub claim so tokens stay self-describing
// for clients that read the custom claim.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Issuer mints HS256 identity tokens with a fixed lifetime.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte, ttl time.Duration, now func() time.Time) Issuer {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return Issuer{secret: secret, ttl: ttl, now: now}
}

func (i Issuer) Mint(accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", errors.New("account id is required")
	}
	if len(i.secret) == 0 {
		return "", errors.New("token issuer is not configured")
	}

	issuedAt := i.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
		},
		UserID: accountID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verifier checks a bearer token and resolves the embedded account id.
// Verification is stateless; nothing is retained between calls.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret []byte, now func() time.Time) Verifier {
	if now == nil {
		now = time.Now
	}
	return Verifier{secret: secret, now: now}
}

func (v Verifier) Verify(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(v.secret) == 0 {
		return "", ErrInvalidToken
	}

	var claims Claims
	_, err := v.parser().ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	accountID := strings.TrimSpace(claims.UserID)
	if accountID == "" {
		accountID = strings.TrimSpace(claims.Subject)
	}
	if accountID == "" {
		return "", ErrInvalidToken
	}
	return accountID, nil
}

func (v Verifier) parser() *jwt.Parser {
	return jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
}
