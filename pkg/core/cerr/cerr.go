// Package cerr defines the client-visible error taxonomy. Each error
// carries a machine-readable Kind, a wrapped cause with the
// human-readable message, and the HTTP status code which the
// presentation layer should answer with. Lower layers return plain
// wrapped errors; a cerr.Error is attached at the point where the
// failure category is decided and is recovered at the serialization
// boundary with errors.As.
package cerr

import (
	"fmt"
	"net/http"
)

// Kind is the machine-readable category of a client-visible error.
type Kind string

// Known error kinds.
const (
	KindValidation Kind = "validation" // malformed or out-of-range input
	KindNotFound   Kind = "not_found"  // referenced entity is missing
	KindIntegrity  Kind = "integrity"  // cross-entity relationship violated
	KindConflict   Kind = "conflict"   // temporal double-booking, duplicate key
	KindAuth       Kind = "auth"       // authentication failure
)

type Error struct {
	Kind           Kind
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d %s] %s", e.HTTPStatusCode, e.Kind, e.Err.Error())
}

// Validation marks err as a malformed-input failure (HTTP 400).
func Validation(err error) *Error {
	return &Error{
		Kind:           KindValidation,
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
	}
}

// NotFound marks err as a missing-entity failure (HTTP 404).
func NotFound(err error) *Error {
	return &Error{
		Kind:           KindNotFound,
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
	}
}

// Integrity marks err as a violated cross-entity relationship
// (HTTP 422), such as an address which does not belong to the client
// it is booked for.
func Integrity(err error) *Error {
	return &Error{
		Kind:           KindIntegrity,
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
	}
}

// Conflict marks err as a clash with existing state (HTTP 409), such
// as a double-booked technician or a duplicate uniqueness key.
func Conflict(err error) *Error {
	return &Error{
		Kind:           KindConflict,
		Err:            err,
		HTTPStatusCode: http.StatusConflict,
	}
}

// Authentication marks err as an authentication failure (HTTP 401).
func Authentication(err error) *Error {
	return &Error{
		Kind:           KindAuth,
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
	}
}
