// Package apperr defines the error taxonomy shared across ingestion,
// analysis, and the HTTP layer. Components wrap underlying errors with a
// Kind so callers (retry logic, HTTP status mapping, logging) can branch on
// cause without string matching.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies the cause of an error.
type Kind string

const (
	KindInput            Kind = "input"             // caller-supplied argument failed validation
	KindStorage          Kind = "storage"            // Postgres/Redis failure
	KindUpstream         Kind = "upstream"            // weather/holiday API failure
	KindModelUnavailable Kind = "model_unavailable" // forecasting could not produce a model
	KindTimeout          Kind = "timeout"             // context deadline exceeded waiting on a dependency
)

// Error wraps an underlying cause with a Kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, &apperr.Error{Kind: apperr.KindStorage}) matches by kind;
// most callers instead use apperr.KindOf to extract the Kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// Retryable reports whether the operation that produced this error is
// safe to retry unchanged. Upstream and timeout failures are transient;
// input and model-unavailable failures are not.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindUpstream, KindTimeout, KindStorage:
		return true
	default:
		return false
	}
}

// New constructs an Error of the given kind wrapping cause (which may be nil).
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Input is a convenience constructor for KindInput errors.
func Input(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInput, Message: fmt.Sprintf(format, args...)}
}

// Storage wraps a storage-layer cause.
func Storage(message string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: message, Cause: cause}
}

// Upstream wraps a failure from an external weather/holiday API.
func Upstream(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Cause: cause}
}

// ModelUnavailable indicates the forecasting engine could not train or
// load a usable model for the request.
func ModelUnavailable(message string) *Error {
	return &Error{Kind: KindModelUnavailable, Message: message}
}

// Timeout wraps a context deadline failure.
func Timeout(message string, cause error) *Error {
	return &Error{Kind: KindTimeout, Message: message, Cause: cause}
}

// KindOf extracts the Kind from err if it is (or wraps) an *Error.
// Returns ("", false) otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsRetryable reports whether err is an *Error marked retryable.
func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable()
	}
	return false
}
