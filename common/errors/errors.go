package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// Public error codes surfaced to API clients in the "error" field.
const (
	CodeDuplicateRegistration = "DUPLICATE_REGISTRATION"
	CodeDuplicateEmail        = "DUPLICATE_EMAIL"
)

// AppError represents an application error carrying the HTTP status the
// dispatcher boundary should respond with.
type AppError struct {
	Code       string                 `json:"error,omitempty"`
	Message    string                 `json:"message"`
	HTTPStatus int                    `json:"-"`
	Fields     map[string]interface{} `json:"-"`
	Cause      error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithField attaches an extra field rendered into the JSON error body.
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewValidation creates a 400 validation error.
func NewValidation(message string) *AppError {
	return &AppError{Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewMissingFields creates a 400 error listing every missing required field.
func NewMissingFields(fields []string) *AppError {
	return &AppError{
		Message:    fmt.Sprintf("Missing required fields: %s", strings.Join(fields, ", ")),
		HTTPStatus: http.StatusBadRequest,
		Fields:     map[string]interface{}{"missingFields": fields},
	}
}

// NewDuplicate creates a 400 error with a public duplicate code.
func NewDuplicate(code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewUnauthorized creates a 401 error.
func NewUnauthorized(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return &AppError{Message: message, HTTPStatus: http.StatusUnauthorized}
}

// NewForbidden creates a 403 error.
func NewForbidden(message string) *AppError {
	if message == "" {
		message = "Admin access required"
	}
	return &AppError{Message: message, HTTPStatus: http.StatusForbidden}
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *AppError {
	return &AppError{Message: message, HTTPStatus: http.StatusNotFound}
}

// NewInternal creates a 500 error wrapping its cause. The cause is logged at
// the dispatcher boundary and never serialized to the client in production.
func NewInternal(message string, cause error) *AppError {
	return &AppError{Message: message, HTTPStatus: http.StatusInternalServerError, Cause: cause}
}

// AsAppError extracts an *AppError from err if it is one, otherwise wraps it
// as a generic 500. This is the single translation point used by the router.
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return NewInternal("Internal server error", err)
}
