// Package errors provides the structured error type used across restbase.
//
// Client-side failures (unknown endpoints, path templating mismatches, invalid
// configuration) are reported as *AppError values carrying a machine-readable
// ErrorCode. Transport failures are never wrapped: they reach the caller exactly
// as the transport returned them.
package errors
