package errors

import "errors"

// Sentinel errors for dispatch failures.
var (
	// ErrUnsupportedMethod is what the response panel shows for a method
	// the executor cannot issue.
	ErrUnsupportedMethod = errors.New("Unsupported method")

	// ErrTransport matches every TransportError via errors.Is.
	ErrTransport = errors.New("transport failure")
)

// TransportError is a network, TLS, DNS or protocol failure while issuing a
// request or reading its response. The message is the underlying error's
// description unchanged.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return ErrTransport.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransport) true for any TransportError.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
