package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies an operation failure for the response envelope.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation_error"
	KindNotFound    ErrorKind = "not_found"
	KindUnavailable ErrorKind = "service_unavailable"
	KindInternal    ErrorKind = "internal_error"
)

// Error is the structured failure surfaced at operation boundaries. Every
// failure leaving the meal-plan engine is one of the four kinds; handlers map
// them onto HTTP statuses and the {error, message, retryable} envelope.
type Error struct {
	Kind      ErrorKind
	Message   string
	Retryable bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewValidationError reports malformed client input. Never retryable.
func NewValidationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError reports a missing user, plan, recipe or slot. Never retryable.
func NewNotFoundError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewUnavailableError reports a provider timeout or rate limit. Retryable.
func NewUnavailableError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnavailable, Message: fmt.Sprintf(format, args...), Retryable: true}
}

// NewInternalError reports an unclassified failure. Not retryable.
func NewInternalError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// NewStructuralError reports that the provider returned output violating the
// plan's structural invariants. The failure names every violated invariant so
// it can be diagnosed without guessing at the provider's intent.
func NewStructuralError(violations []string) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: "generated plan failed validation: " + strings.Join(violations, "; "),
	}
}

// AsError extracts a *Error from err, wrapping unclassified failures as
// internal errors so nothing leaves an operation unclassified.
func AsError(err error) *Error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return NewInternalError("%s", err.Error())
}
