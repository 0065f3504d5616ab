package domain

import (
	"fmt"
)

// ErrNotFound is returned when an entity lookup misses.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// NewErrCustomerNotFound creates a not-found error for a customer.
func NewErrCustomerNotFound(id string) error {
	return &ErrNotFound{Entity: "customer", ID: id}
}

// NewErrTemplateNotFound creates a not-found error for an email template.
func NewErrTemplateNotFound(id string) error {
	return &ErrNotFound{Entity: "email template", ID: id}
}

// NewErrEmailLogNotFound creates a not-found error for an email log.
func NewErrEmailLogNotFound(id string) error {
	return &ErrNotFound{Entity: "email log", ID: id}
}

// ErrZohoNotConnected signals that the accounting integration has no usable
// credentials or its token refresh failed. Callers surface it as
// "not connected" instead of failing deep inside a request path.
type ErrZohoNotConnected struct {
	Reason string
}

func (e *ErrZohoNotConnected) Error() string {
	if e.Reason == "" {
		return "zoho integration is not connected"
	}
	return fmt.Sprintf("zoho integration is not connected: %s", e.Reason)
}

// ErrTokenInvalid is returned when a confirmation token is expired or
// already used.
type ErrTokenInvalid struct {
	Reason string
}

func (e *ErrTokenInvalid) Error() string {
	return fmt.Sprintf("confirmation token invalid: %s", e.Reason)
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

// ErrorKind tags the failure channel of a service-layer result so that
// callers can switch on known kinds instead of sniffing error strings.
type ErrorKind string

const (
	// ErrorKindNone means the operation succeeded.
	ErrorKindNone ErrorKind = ""
	// ErrorKindValidation covers rejected input, reported before side effects.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindNotFound covers data-integrity misses such as unknown customers.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindExternalAPI covers transport/auth failures at an integration boundary.
	ErrorKindExternalAPI ErrorKind = "external_api"
	// ErrorKindStateConflict covers explicit terminal states such as an
	// ambiguous contact match or an exhausted send quota.
	ErrorKindStateConflict ErrorKind = "state_conflict"
)
