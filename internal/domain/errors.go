package domain

import (
	"errors"
	"fmt"
)

// Common error types
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ErrAlreadyExists signals a uniqueness conflict (one lead per conversation,
// one open draft per lead, one work order per lead). Callers on the
// automation path treat it as the idempotent no-op case.
type ErrAlreadyExists struct {
	Entity string
	Key    string
}

func (e *ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%s already exists for %s", e.Entity, e.Key)
}

// IsAlreadyExists reports whether err is a uniqueness conflict
func IsAlreadyExists(err error) bool {
	var target *ErrAlreadyExists
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a missing-entity error
func IsNotFound(err error) bool {
	var target *ErrNotFound
	return errors.As(err, &target)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// AuthenticationError represents a rejected request: bad or missing
// webhook signature, or an unresolvable org with no default configured.
type AuthenticationError struct {
	Message string
}

func (e AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error: %s", e.Message)
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(message string) error {
	return AuthenticationError{
		Message: message,
	}
}

// ProviderError represents an outbound channel provider failure. State
// persisted before the send is never rolled back.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error [%s]: %s - %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("provider error [%s]: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
