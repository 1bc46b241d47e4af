// Package errors provides application-level error types and utilities.
// It defines the typed failure taxonomy used across use cases: validation,
// invalid reference, invalid state, conflict, not found, and storage errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "validation_error"
	ErrorTypeInvalidReference ErrorType = "invalid_reference"
	ErrorTypeInvalidState     ErrorType = "invalid_state"
	ErrorTypeConflict         ErrorType = "conflict"
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeStorage          ErrorType = "storage_error"
	ErrorTypeUnauthorized     ErrorType = "unauthorized"
	ErrorTypeInternal         ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped cause, if any
func (e *AppError) Unwrap() error {
	return e.cause
}

func newAppError(t ErrorType, code int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details...)
}

// NewInvalidReferenceError creates an error for unknown or cross-owner references
func NewInvalidReferenceError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidReference, http.StatusUnprocessableEntity, message, details...)
}

// NewInvalidStateError creates an error for operations illegal in the current state
func NewInvalidStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidState, http.StatusConflict, message, details...)
}

// NewConflictError creates a new conflict error for lost concurrent-write races
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details...)
}

// NewStorageError creates a new storage error wrapping the persistence failure.
// Storage failures are always propagated, never swallowed.
func NewStorageError(message string, cause error) *AppError {
	err := newAppError(ErrorTypeStorage, http.StatusInternalServerError, message)
	if cause != nil {
		err.Details = cause.Error()
		err.cause = cause
	}
	return err
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details...)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool { return isType(err, ErrorTypeValidation) }

// IsInvalidReferenceError checks if the error is an invalid reference error
func IsInvalidReferenceError(err error) bool { return isType(err, ErrorTypeInvalidReference) }

// IsInvalidStateError checks if the error is an invalid state error
func IsInvalidStateError(err error) bool { return isType(err, ErrorTypeInvalidState) }

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool { return isType(err, ErrorTypeConflict) }

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsStorageError checks if the error is a storage error
func IsStorageError(err error) bool { return isType(err, ErrorTypeStorage) }
