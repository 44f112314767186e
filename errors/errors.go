package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is the unified error type for client-side failures.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the closest HTTP status for this error, for callers that surface it.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// UnknownEndpoint reports a lookup of a name that is absent from the registry
// (or maps to an empty template). available lists every registered name.
func UnknownEndpoint(name string, available []string) *AppError {
	names := make([]string, len(available))
	copy(names, available)
	return &AppError{
		Code:       ErrCodeUnknownEndpoint,
		Message:    fmt.Sprintf("%s does not exist, possible calls: [%s]", name, strings.Join(names, ", ")),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"endpoint": name, "available": names},
	}
}

// TemplateMismatch reports a path whose placeholder count differs from the
// number of supplied positional arguments.
func TemplateMismatch(path string, placeholders, args int) *AppError {
	return &AppError{
		Code: ErrCodeTemplateMismatch,
		Message: fmt.Sprintf("path %q has %d placeholder(s) but %d argument(s) were supplied",
			path, placeholders, args),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"path": path, "placeholders": placeholders, "args": args},
	}
}

// InvalidConfig creates a new AppError for an invalid configuration field.
func InvalidConfig(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("Invalid configuration: %s", reason),
		HTTPStatus: http.StatusInternalServerError, Details: details,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": field},
	}
}

// AuthFailed wraps an error returned by an authenticator.
func AuthFailed(scheme string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeAuthFailed, Message: fmt.Sprintf("%s authentication could not be applied", scheme),
		HTTPStatus: http.StatusUnauthorized, Retryable: true,
		Details: map[string]any{"scheme": scheme}, Cause: cause,
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsUnknownEndpoint reports whether err is an UNKNOWN_ENDPOINT error.
func IsUnknownEndpoint(err error) bool {
	return IsCode(err, ErrCodeUnknownEndpoint)
}

// IsTemplateMismatch reports whether err is a TEMPLATE_MISMATCH error.
func IsTemplateMismatch(err error) bool {
	return IsCode(err, ErrCodeTemplateMismatch)
}
