package errors

import (
	"net/http"

	"restops/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors carrying the same business code, so errors.Is works on
// values returned by WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrEmptyContent = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CONTENT",
		"message content must not be empty",
		"",
	)

	ErrContentTooLong = NewBaseError(
		http.StatusBadRequest,
		"CONTENT_TOO_LONG",
		"message content is too long",
		"",
	)

	ErrInvalidPriority = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRIORITY",
		"priority must be one of low, normal, high, urgent",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"role must be one of admin, manager, cashier",
		"",
	)

	ErrInvalidAddressing = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ADDRESSING",
		"a message needs exactly one of a recipient or a broadcast scope",
		"",
	)

	ErrInvalidIdentity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTITY",
		"identity key does not match the authenticated staff member",
		"",
	)

	ErrNotRegistered = NewBaseError(
		http.StatusBadRequest,
		"NOT_REGISTERED",
		"connection must register before sending events",
		"",
	)

	// Not found errors
	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"message not found",
		"",
	)

	ErrRecipientNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPIENT_NOT_FOUND",
		"recipient not found",
		"",
	)

	ErrBranchNotFound = NewBaseError(
		http.StatusNotFound,
		"BRANCH_NOT_FOUND",
		"branch not found",
		"",
	)

	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid access token",
		"",
	)

	ErrNotMessageParty = NewBaseError(
		http.StatusForbidden,
		"NOT_MESSAGE_PARTY",
		"only the sender or recipient may change this message",
		"",
	)

	ErrNotMessageRecipient = NewBaseError(
		http.StatusForbidden,
		"NOT_MESSAGE_RECIPIENT",
		"only the recipient may mark this message as read",
		"",
	)

	ErrBroadcastForbidden = NewBaseError(
		http.StatusForbidden,
		"BROADCAST_FORBIDDEN",
		"you are not allowed to broadcast to this scope",
		"",
	)

	// Transport errors, never surfaced to senders
	ErrTransportUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"TRANSPORT_UNAVAILABLE",
		"connection cannot accept more events",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
