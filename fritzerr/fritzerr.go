// Package fritzerr provides domain-specific error types for fritzkit.
//
// This package defines structured errors with error codes, making it easier
// to handle and test different error conditions consistently across the
// library and in code built on top of it.
package fritzerr

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the library.
type ErrorCode string

const (
	// ErrCodeConnection indicates a general error communicating with the router.
	ErrCodeConnection ErrorCode = "CONNECTION_ERROR"

	// ErrCodeService indicates an unknown or unavailable service name.
	ErrCodeService ErrorCode = "SERVICE_ERROR"

	// ErrCodeAction indicates an unknown action name for a known service.
	ErrCodeAction ErrorCode = "ACTION_ERROR"

	// ErrCodeArgument indicates an invalid or rejected action argument.
	ErrCodeArgument ErrorCode = "ARGUMENT_ERROR"

	// ErrCodeArrayIndex indicates an index beyond the device-internal array bounds.
	ErrCodeArrayIndex ErrorCode = "ARRAY_INDEX_ERROR"

	// ErrCodeKeyNotFound indicates a lookup of a key that is not present.
	ErrCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"

	// ErrCodeTypeMismatch indicates a value of an unsupported dynamic type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeAuthorization indicates rejected credentials.
	ErrCodeAuthorization ErrorCode = "AUTHORIZATION_ERROR"

	// ErrCodeResource indicates an unreadable or undecodable external resource.
	ErrCodeResource ErrorCode = "RESOURCE_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// IsCode reports whether any error in err's chain is an *Error carrying code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConnectionError creates a new router communication error.
func NewConnectionError(message string, cause error) *Error {
	return Wrap(ErrCodeConnection, message, cause)
}

// NewServiceError creates a new unknown-service error.
func NewServiceError(message string, cause error) *Error {
	return Wrap(ErrCodeService, message, cause)
}

// NewActionError creates a new unknown-action error.
func NewActionError(message string, cause error) *Error {
	return Wrap(ErrCodeAction, message, cause)
}

// NewArgumentError creates a new invalid-argument error.
func NewArgumentError(message string, cause error) *Error {
	return Wrap(ErrCodeArgument, message, cause)
}

// NewArrayIndexError creates a new array-index error.
func NewArrayIndexError(message string, cause error) *Error {
	return Wrap(ErrCodeArrayIndex, message, cause)
}

// NewKeyNotFoundError creates a new missing-key error.
func NewKeyNotFoundError(message string, cause error) *Error {
	return Wrap(ErrCodeKeyNotFound, message, cause)
}

// NewTypeMismatchError creates a new type-mismatch error.
func NewTypeMismatchError(message string, cause error) *Error {
	return Wrap(ErrCodeTypeMismatch, message, cause)
}

// NewAuthorizationError creates a new authorization error.
func NewAuthorizationError(message string, cause error) *Error {
	return Wrap(ErrCodeAuthorization, message, cause)
}

// NewResourceError creates a new resource error.
func NewResourceError(message string, cause error) *Error {
	return Wrap(ErrCodeResource, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}
