// Package errors defines the application-level error taxonomy. Every error
// that reaches the transport layer is one of these kinds, so the HTTP error
// handler never has to guess at a status code.
package errors

import (
	"net/http"

	"bistro/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
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

// Predefined error types
var (
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No user with the supplied identifier was found",
	)

	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"No restaurant with the supplied identifier was found",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"No review with the supplied identifier was found",
	)

	ErrInvalidPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYLOAD",
		"Invalid request body",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An unexpected error occurred whilst processing the request",
	)
)

// Fixed messages attached to uniqueness violations, shared by the validators
// and by the store-level constraint backstop.
const (
	MsgEmailAlreadyUsed       = "That email is already used, please use a unique email"
	MsgPhoneNumberAlreadyUsed = "That phone number is already used, please use a unique phone number"
	MsgReviewAlreadyExists    = "A review for this user and restaurant already exists"
)

// ViolationError reports one or more rejected fields as a field name to
// message mapping, the shape the REST layer renders as {"reasons": {...}}.
// Field-constraint failures map to 400, uniqueness and identifier conflicts
// to 409. The Kind distinguishes them for callers that care.
type ViolationError struct {
	kind    ViolationKind
	reasons map[string]string
}

// ViolationKind names the class of violation carried by a ViolationError.
type ViolationKind string

const (
	// KindFieldViolation marks one or more field-constraint failures.
	KindFieldViolation ViolationKind = "FIELD_VIOLATION"
	// KindUniquenessViolation marks a duplicate natural key.
	KindUniquenessViolation ViolationKind = "UNIQUENESS_VIOLATION"
	// KindIDMismatch marks a body/path identifier conflict on update.
	KindIDMismatch ViolationKind = "ID_MISMATCH"
)

// NewFieldViolations creates a ViolationError for field-constraint failures.
// The reasons map must contain every violated field, not just the first.
func NewFieldViolations(reasons map[string]string) *ViolationError {
	return &ViolationError{
		kind:    KindFieldViolation,
		reasons: reasons,
	}
}

// NewUniquenessViolation creates a ViolationError for a duplicate natural
// key, carrying the single conflicting field and its fixed message.
func NewUniquenessViolation(field, message string) *ViolationError {
	return &ViolationError{
		kind:    KindUniquenessViolation,
		reasons: map[string]string{field: message},
	}
}

// NewIDMismatch creates a ViolationError for a body/path identifier conflict.
func NewIDMismatch(message string) *ViolationError {
	return &ViolationError{
		kind:    KindIDMismatch,
		reasons: map[string]string{"id": message},
	}
}

// Error implements the error interface
func (e *ViolationError) Error() string {
	return string(e.kind)
}

// Kind returns the class of violation.
func (e *ViolationError) Kind() ViolationKind {
	return e.kind
}

// Reasons returns the field name to message mapping.
func (e *ViolationError) Reasons() map[string]string {
	return e.reasons
}

// HTTPCode returns the HTTP status code
func (e *ViolationError) HTTPCode() int {
	if e.kind == KindFieldViolation {
		return http.StatusBadRequest
	}

	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *ViolationError) ErrorCode() string {
	return string(e.kind)
}

// Message returns the user-friendly error message
func (e *ViolationError) Message() string {
	if e.kind == KindFieldViolation {
		return "Bad Request"
	}

	return "Conflict"
}
