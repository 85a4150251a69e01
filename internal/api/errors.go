package api

// errors.go defines the error codes used by the subway API

import "fmt"

// APIError represents a transport-level error (bad JSON, rate limit etc).
// Domain errors are subway.SubwayError values and are mapped separately.
type APIError struct {
	// code is the API error code
	code ErrorCode

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *APIError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *APIError) Code() ErrorCode { return e.code }
func (e *APIError) Unwrap() error   { return e.wrapped }

// ErrorCode is used in errors returned by the API.
//
//   - 7000-7999 technical errors: the request could not be processed as sent.
//   - 8000-8999 functional errors: the request was understood but refers to
//     missing resources or conflicts with existing ones.
type ErrorCode int

const (
	// ErrCodeMalformedRequest is used when the request body is not valid JSON
	ErrCodeMalformedRequest ErrorCode = 7001

	// ErrCodeInvalidArgument is used for rejected field or path values
	// (empty name or color, non-positive distance, identical stations, bad ids)
	ErrCodeInvalidArgument ErrorCode = 7002

	// ErrCodeInternalError is used when an internal server error occurs
	ErrCodeInternalError ErrorCode = 7003

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded ErrorCode = 7004

	// ErrCodeRequestTooLarge is used when the request body is too large
	// - this is only used in the middleware
	ErrCodeRequestTooLarge ErrorCode = 7005

	// ErrCodeNotFound is used for unknown lines and stations
	ErrCodeNotFound ErrorCode = 8001

	// ErrCodeConflict is used for duplicate names and stations still in use
	ErrCodeConflict ErrorCode = 8002
)

// NewMalformedRequestError creates an error for malformed requests.
func NewMalformedRequestError(msg string) error {
	return &APIError{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps an existing error as a malformed request error.
func WrapMalformedRequestError(err error, msg string) error {
	return &APIError{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewInvalidArgumentError creates an error for a rejected path or query value.
func NewInvalidArgumentError(msg string) error {
	return &APIError{code: ErrCodeInvalidArgument, message: msg}
}

// WrapInternalError wraps an unexpected failure.
func WrapInternalError(err error, msg string) error {
	return &APIError{code: ErrCodeInternalError, message: msg, wrapped: err}
}

// NewRateLimitError creates a rate limit exceeded error.
func NewRateLimitError(msg string) error {
	return &APIError{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
func NewRequestTooLargeError(msg string) error {
	return &APIError{code: ErrCodeRequestTooLarge, message: msg}
}
