package token

import (
	"testing"
	"time"
)

var testSecret = []byte("test-signing-secret")

func fixedTime(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMintAndVerifyRoundTrip(t *testing.T) {
	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewIssuer(testSecret, 24*time.Hour, fixedTime(issuedAt))

	minted, err := issuer.Mint("account-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	verifier := NewVerifier(testSecret, fixedTime(issuedAt.Add(time.Hour)))
	accountID, err := verifier.Verify(minted)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if accountID != "account-1" {
		t.Fatalf("expected account-1, got %q", accountID)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewIssuer(testSecret, 24*time.Hour, fixedTime(issuedAt))

	minted, err := issuer.Mint("account-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	stillValid := NewVerifier(testSecret, fixedTime(issuedAt.Add(23*time.Hour)))
	if _, err := stillValid.Verify(minted); err != nil {
		t.Fatalf("token should be valid before expiry: %v", err)
	}

	expired := NewVerifier(testSecret, fixedTime(issuedAt.Add(25*time.Hour)))
	if _, err := expired.Verify(minted); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer(testSecret, 24*time.Hour, nil)
	minted, err := issuer.Mint("account-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	verifier := NewVerifier([]byte("other-secret"), nil)
	if _, err := verifier.Verify(minted); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := NewVerifier(testSecret, nil)
	for _, raw := range []string{"", "   ", "not-a-token", "a.b.c"} {
		if _, err := verifier.Verify(raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestMintRequiresAccountID(t *testing.T) {
	issuer := NewIssuer(testSecret, 24*time.Hour, nil)
	if _, err := issuer.Mint("  "); err == nil {
		t.Fatal("expected mint without account id to fail")
	}
}
