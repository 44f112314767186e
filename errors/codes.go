package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Dispatch errors
const (
	// ErrCodeUnknownEndpoint indicates the requested endpoint name is not registered.
	ErrCodeUnknownEndpoint ErrorCode = "UNKNOWN_ENDPOINT"
	// ErrCodeTemplateMismatch indicates the path placeholders and arguments differ in count.
	ErrCodeTemplateMismatch ErrorCode = "TEMPLATE_MISMATCH"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidConfig indicates the client configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Authentication errors
const (
	// ErrCodeAuthFailed indicates an authenticator could not attach credentials.
	ErrCodeAuthFailed ErrorCode = "AUTH_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeAuthFailed: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
