// Package apperr defines the service-level error taxonomy for the sweet
// shop and its mapping onto HTTP status codes.
//
// Services return *Error values; the HTTP layer calls HTTPStatus to pick
// the response code and serialises the message as {"error": message}.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a service failure.
type Kind int

const (
	// Internal is the fallback for unclassified/storage failures. → 500
	Internal Kind = iota
	// Validation covers malformed or out-of-range input. → 400
	Validation
	// NotFound means a referenced entity is absent. → 404
	NotFound
	// OutOfStock means the product quantity is zero. → 400
	OutOfStock
	// InsufficientStock means the product quantity is below the request. → 400
	InsufficientStock
	// Unauthenticated covers bad credentials or a missing/invalid token. → 401
	Unauthenticated
	// Forbidden means the caller's role does not allow the operation. → 403
	Forbidden
)

// Error is a classified service error.
type Error struct {
	Kind    Kind
	Message string
	Err     error // optional wrapped cause
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error with a fixed message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a classified error. The message is what the
// client sees; the cause is for logs only.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// KindOf extracts the Kind from err, or Internal when err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// HTTPStatus maps err onto the status code the boundary should write.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation, OutOfStock, InsufficientStock:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Unclassified errors
// never leak their text to the client.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != Internal {
		return ae.Message
	}
	return "Internal server error"
}
