package errors

import "errors"

// Sentinel texts match the public wire contract so handlers can surface
// err.Error() directly as the response message.
var (
	ErrTaskNameRequired = errors.New("Task name is required")
	ErrDueDateRequired  = errors.New("Due date is required")
	ErrInvalidDueDate   = errors.New("Enter a valid due date")
	ErrTaskNotFound     = errors.New("Task not found")

	// ErrOwnerRequired means the acting identity was never bound; it can
	// only happen if a route bypasses the token gate.
	ErrOwnerRequired = errors.New("authorization required")
)
