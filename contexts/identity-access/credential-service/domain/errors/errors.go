package errors

import "errors"

// Sentinel texts match the public wire contract so handlers can surface
// err.Error() directly as the response message.
var (
	ErrInvalidEmail       = errors.New("Enter a valid email")
	ErrPasswordTooShort   = errors.New("Password must be at least 8 characters")
	ErrPasswordRequired   = errors.New("Password is required")
	ErrEmailTaken         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrAccountNotFound stays internal; authentication reports
	// ErrInvalidCredentials instead so account existence never leaks.
	ErrAccountNotFound = errors.New("account not found")
)
