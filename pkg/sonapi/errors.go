package sonapi

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyWord = errors.New("empty word")
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("transport error")
	// ErrDataShape matches every *DataShapeError.
	ErrDataShape = errors.New("unexpected response shape")
)

// ErrBodyTooLarge is wrapped by a *TransportError when a response exceeds the read limit.
var ErrBodyTooLarge = errors.New("response body too large")

// TransportError is returned when the dictionary service could not be reached
// or answered with a non-success status.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s: unexpected response code: %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DataShapeError is returned when the response document lacks a field the
// lookup depends on. Path names the missing field, e.g. "searchResult[0]".
type DataShapeError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataShapeError) Error() string {
	msg := fmt.Sprintf("%s at %s: %s", ErrDataShape, e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataShapeError) Unwrap() error {
	return e.Err
}

func (e *DataShapeError) Is(target error) bool {
	return target == ErrDataShape
}
