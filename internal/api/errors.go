package api

import "errors"

// The backend reports failures two ways: an envelope tagged "error" carrying
// a human-readable message, and plain transport-level failures. Callers get
// distinct types so they can tell the two apart, even where they choose to
// react identically.

// DomainError is a server-reported failure: validation, not-found, or a
// business-rule violation. Message is safe to show to the user.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}

// TransportError wraps a network or response-decoding failure. No
// human-readable message is available.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrUnauthorized is returned when the backend rejects the credential.
var ErrUnauthorized = errors.New("unauthorized")

// IsUnauthorized reports whether err is a credential rejection.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// DomainMessage extracts the server-supplied message from a domain error.
func DomainMessage(err error) (string, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message, true
	}
	return "", false
}

// IsTransport reports whether err is a network or decoding failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
