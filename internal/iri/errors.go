package iri

import "fmt"

// TransportError reports a failure to build, send or read an upstream call,
// including a non-2xx response status.
type TransportError struct {
	Command Command
	// StatusCode is the upstream HTTP status, or 0 if no response arrived.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("iri %s: upstream status %d", e.Command, e.StatusCode)
	}
	return fmt.Sprintf("iri %s: %v", e.Command, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports an upstream payload that is not valid UTF-8 or does not
// match the expected record shape.
type DecodeError struct {
	Command Command
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("iri %s: decode response: %v", e.Command, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
