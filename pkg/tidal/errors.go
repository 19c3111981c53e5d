package tidal

import (
	"errors"
	"fmt"
)

// ErrSessionRejected is returned when the server explicitly refused the
// login (bad credentials, invalid application token). It carries no
// structured detail; the raw failure body is emitted through the client's
// logger before the error returns.
var ErrSessionRejected = errors.New("tidal: login rejected by server")

// RequestError wraps a transport or decoding failure during the login
// exchange. The underlying cause is preserved and reachable via
// errors.Unwrap / errors.As.
type RequestError struct {
	Err error // The underlying transport or decoding error
}

// Error returns the error message.
func (e *RequestError) Error() string {
	return fmt.Sprintf("tidal: login request failed: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}
