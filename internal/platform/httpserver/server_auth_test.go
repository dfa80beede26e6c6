package httpserver

import (
	"net/http"
	"testing"
)

func TestSignupReturnsToken(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":    "a@x.com",
		"password": "password1",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	payload := decodeEnvelope(t, rr)
	if payload["status"] != true {
		t.Fatalf("expected status true, got %#v", payload["status"])
	}
	if payload["message"] != "Sign up successful" {
		t.Fatalf("unexpected message %#v", payload["message"])
	}
}

func TestSignupRejectsInvalidEmail(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":    "not-an-email",
		"password": "password1",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if payload := decodeEnvelope(t, rr); payload["message"] != "Enter a valid email" {
		t.Fatalf("unexpected message %#v", payload["message"])
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":    "a@x.com",
		"password": "short",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if payload := decodeEnvelope(t, rr); payload["message"] != "Password must be at least 8 characters" {
		t.Fatalf("unexpected message %#v", payload["message"])
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	server := newTestServer()
	signupToken(t, server, "a@x.com", "password1")

	rr := doJSON(t, server, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":    "a@x.com",
		"password": "another-password",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if payload := decodeEnvelope(t, rr); payload["message"] != "User already exists" {
		t.Fatalf("unexpected message %#v", payload["message"])
	}
}

func TestLoginReturnsToken(t *testing.T) {
	server := newTestServer()
	signupToken(t, server, "a@x.com", "password1")

	rr := doJSON(t, server, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "password1",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	payload := decodeEnvelope(t, rr)
	if payload["message"] != "Login successful" {
		t.Fatalf("unexpected message %#v", payload["message"])
	}
	data, ok := payload["data"].(map[string]any)
	if !ok || data["token"] == "" {
		t.Fatalf("expected token, got %#v", payload["data"])
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	server := newTestServer()
	signupToken(t, server, "a@x.com", "password1")

	wrongPassword := doJSON(t, server, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "wrong-password",
	})
	unknownEmail := doJSON(t, server, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "b@x.com",
		"password": "password1",
	})

	for _, rr := range []*struct {
		code int
		body string
	}{
		{wrongPassword.Code, wrongPassword.Body.String()},
		{unknownEmail.Code, unknownEmail.Body.String()},
	} {
		if rr.code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", rr.code, rr.body)
		}
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("failure responses differ: %s vs %s", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
	if payload := decodeEnvelope(t, wrongPassword); payload["message"] != "Invalid credentials" {
		t.Fatalf("unexpected message %#v", payload["message"])
	}
}

func TestSignupRejectsMalformedJSON(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/auth/signup", "", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %d", rr.Code)
	}
}
