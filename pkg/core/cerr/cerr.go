// Package cerr provides the classified error type which is shared
// between the use cases and the REST adapter layer. A cerr.Error wraps
// a cause error with the HTTP status code class which should be used
// when serializing it for a web client. Errors without this wrapper
// are reported as internal server errors by the adapter layer.
package cerr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// BadRequest classifies err as an invalid-argument client error, such
// as an unparseable date string or a status value outside the accepted
// enumeration.
func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// NotFound classifies err as a missing-entity client error, raised
// when a referenced vehicle, employee, service type, service order,
// or supply does not exist for the given identifier or key.
func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// Conflict classifies err as a uniqueness-conflict client error, such
// as registering a vehicle with an already-registered plate number.
func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}
