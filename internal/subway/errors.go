package subway

// errors.go defines the error taxonomy of the line catalog

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a SubwayError.
type ErrorKind int

const (
	// KindInternal is used for unexpected failures (store unavailable etc).
	KindInternal ErrorKind = iota

	// KindInvalidArgument is used when the caller supplied bad input:
	// empty name or color, non-positive distance, identical up/down stations.
	KindInvalidArgument

	// KindNotFound is used when a line or a referenced station does not exist.
	KindNotFound

	// KindConflict is used when an operation would break a uniqueness or
	// reference constraint (duplicate names, deleting a station still in use).
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Sentinel errors reported by store implementations.
// The services translate them into SubwayError values.
var (
	ErrLineNotFound         = errors.New("line not found")
	ErrStationNotFound      = errors.New("station not found")
	ErrDuplicateLineName    = errors.New("line name already exists")
	ErrDuplicateStationName = errors.New("station name already exists")
	ErrStationInUse         = errors.New("station is referenced by a line")
)

// SubwayError represents a structured error from the subway package.
type SubwayError struct {

	// kind classifies the error
	kind ErrorKind

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *SubwayError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *SubwayError) Kind() ErrorKind { return e.kind }
func (e *SubwayError) Unwrap() error   { return e.wrapped }

// NewInvalidArgumentError creates an error for rejected input.
func NewInvalidArgumentError(msg string) error {
	return &SubwayError{kind: KindInvalidArgument, message: msg}
}

// NewNotFoundError creates an error for a missing line or station.
func NewNotFoundError(msg string) error {
	return &SubwayError{kind: KindNotFound, message: msg}
}

// WrapNotFoundError wraps a store error as a not found error.
func WrapNotFoundError(err error, msg string) error {
	return &SubwayError{kind: KindNotFound, message: msg, wrapped: err}
}

// WrapConflictError wraps a store error as a conflict error.
func WrapConflictError(err error, msg string) error {
	return &SubwayError{kind: KindConflict, message: msg, wrapped: err}
}

// WrapInternalError wraps an unexpected failure.
// The message is never shown to API clients.
func WrapInternalError(err error, msg string) error {
	return &SubwayError{kind: KindInternal, message: msg, wrapped: err}
}

// KindOf returns the kind of err, or KindInternal when err is not a SubwayError.
func KindOf(err error) ErrorKind {
	var subwayErr *SubwayError
	if errors.As(err, &subwayErr) {
		return subwayErr.Kind()
	}
	return KindInternal
}
