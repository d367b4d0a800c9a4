// FilePath: server/stockkarte/internal/errors/errors.go
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Error types
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeInvalidEnumValue ErrorType = "invalid_enum_value"
	ErrorTypeOutOfRange       ErrorType = "out_of_range"
	ErrorTypeMalformedInput   ErrorType = "malformed_input"
	ErrorTypeDatabase         ErrorType = "database"
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeConflict         ErrorType = "conflict"
	ErrorTypeInternal         ErrorType = "internal"
	ErrorTypeUnavailable      ErrorType = "service_unavailable"
)

// APIError represents a structured error that can be returned to callers as-is
type APIError struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Code      int       `json:"code"`
	RequestID string    `json:"request_id,omitempty"`
	Field     string    `json:"field,omitempty"`
	Value     any       `json:"value,omitempty"`
	Details   any       `json:"details,omitempty"`
	err       error     // Internal error for logging
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap exposes the internal error to errors.Is / errors.As
func (e *APIError) Unwrap() error {
	return e.err
}

// WithRequestID adds a request ID to the error
func (e *APIError) WithRequestID(id string) *APIError {
	e.RequestID = id
	return e
}

// WithDetails adds additional details to the error
func (e *APIError) WithDetails(details any) *APIError {
	e.Details = details
	return e
}

// WithField names the input field the error refers to
func (e *APIError) WithField(field string) *APIError {
	e.Field = field
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeValidation,
		Message: msg,
		Code:    http.StatusBadRequest,
		err:     err,
	}
}

// NewInvalidEnumValueError reports a value outside the closed set of field
func NewInvalidEnumValueError(field string, value any) *APIError {
	return &APIError{
		Type:    ErrorTypeInvalidEnumValue,
		Message: fmt.Sprintf("%q is not a permitted value", fmt.Sprint(value)),
		Code:    http.StatusBadRequest,
		Field:   field,
		Value:   value,
	}
}

// NewOutOfRangeError reports a numeric (or date) value violating the bounds of field
func NewOutOfRangeError(field string, value any, bounds string) *APIError {
	return &APIError{
		Type:    ErrorTypeOutOfRange,
		Message: fmt.Sprintf("%v is out of range (%s)", value, bounds),
		Code:    http.StatusBadRequest,
		Field:   field,
		Value:   value,
	}
}

// NewMalformedInputError creates an error for input that does not parse into a record
func NewMalformedInputError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeMalformedInput,
		Message: msg,
		Code:    http.StatusBadRequest,
		err:     err,
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeDatabase,
		Message: msg,
		Code:    http.StatusInternalServerError,
		err:     err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeNotFound,
		Message: msg,
		Code:    http.StatusNotFound,
		err:     err,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeConflict,
		Message: msg,
		Code:    http.StatusConflict,
		err:     err,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeInternal,
		Message: msg,
		Code:    http.StatusInternalServerError,
		err:     err,
	}
}

// NewUnavailableError creates an error for a dependency that cannot be reached
func NewUnavailableError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeUnavailable,
		Message: msg,
		Code:    http.StatusServiceUnavailable,
		err:     err,
	}
}

// FromError returns the outermost *APIError in err's chain, or wraps err as an internal error
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError("internal error", err)
}

// hasType walks every APIError in the chain, not only the outermost one
func hasType(err error, t ErrorType) bool {
	for err != nil {
		var apiErr *APIError
		if !stderrors.As(err, &apiErr) {
			return false
		}
		if apiErr.Type == t {
			return true
		}
		err = apiErr.err
	}
	return false
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a Validation error
func IsValidation(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsInvalidEnumValue checks if an error reports an out-of-set enum value
func IsInvalidEnumValue(err error) bool {
	return hasType(err, ErrorTypeInvalidEnumValue)
}

// IsOutOfRange checks if an error reports a violated numeric bound
func IsOutOfRange(err error) bool {
	return hasType(err, ErrorTypeOutOfRange)
}

// IsMalformedInput checks if an error reports undecodable input
func IsMalformedInput(err error) bool {
	return hasType(err, ErrorTypeMalformedInput)
}

// IsConflict checks if an error is a Conflict error
func IsConflict(err error) bool {
	return hasType(err, ErrorTypeConflict)
}
