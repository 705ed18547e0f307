package auth

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the auth service. Each maps to exactly one HTTP
// status at the boundary. Wording for credential failures is deliberately
// generic so responses never reveal whether the email exists.
var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidToken       = errors.New("Invalid token")
	ErrUserNotFound       = errors.New("User not found")
)

// ValidationError reports a missing required field by name. Unlike credential
// failures, validation messages are specific: the client can fix them.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
