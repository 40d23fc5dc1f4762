package client

import (
	"errors"
	"fmt"
)

// Kind classifies a client failure.
type Kind int

const (
	// KindMalformedRequest means the request payload could not be encoded
	// or the request could not be built.
	KindMalformedRequest Kind = iota + 1
	// KindMalformedResponse means the response body was not valid JSON or
	// did not have the expected shape.
	KindMalformedResponse
	// KindHTTP means the server answered with a status other than 200 or 201.
	KindHTTP
	// KindTransport means the Doer failed before a response was available.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindMalformedRequest:
		return "malformed request"
	case KindMalformedResponse:
		return "malformed response"
	case KindHTTP:
		return "http error"
	case KindTransport:
		return "transport failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by every Client operation that fails.
type Error struct {
	Kind Kind
	// StatusCode is set only for KindHTTP.
	StatusCode int
	Message    string
	Err        error
}

// Sentinels for errors.Is. Each matches any *Error of the same Kind.
var (
	ErrMalformedRequest  error = kindError(KindMalformedRequest)
	ErrMalformedResponse error = kindError(KindMalformedResponse)
	ErrHTTP              error = kindError(KindHTTP)
	ErrTransport         error = kindError(KindTransport)
)

// kindError is the value type behind the sentinels, so they cannot be
// modified through a pointer.
type kindError Kind

func (k kindError) Error() string {
	return "comment api: " + Kind(k).String()
}

func (e *Error) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("comment api: %s %d: %s", e.Kind, e.StatusCode, e.Message)
	}
	if e.Message == "" {
		return "comment api: " + e.Kind.String()
	}
	return fmt.Sprintf("comment api: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a sentinel or an *Error of the same kind.
// An *Error target with a non-zero StatusCode also has to match the status.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case kindError:
		return Kind(t) == e.Kind
	case *Error:
		if t.Kind != e.Kind {
			return false
		}
		return t.StatusCode == 0 || t.StatusCode == e.StatusCode
	default:
		return false
	}
}

// IsClientError reports whether e is an HTTP error with a 4xx status.
func (e *Error) IsClientError() bool {
	return e.Kind == KindHTTP && e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether e is an HTTP error with a 5xx status.
func (e *Error) IsServerError() bool {
	return e.Kind == KindHTTP && e.StatusCode >= 500 && e.StatusCode < 600
}

// StatusCode returns the HTTP status carried by err, if err wraps a KindHTTP *Error.
func StatusCode(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindHTTP {
		return e.StatusCode, true
	}
	return 0, false
}

func malformedRequest(err error) *Error {
	return &Error{Kind: KindMalformedRequest, Message: err.Error(), Err: err}
}

func malformedResponse(err error) *Error {
	return &Error{Kind: KindMalformedResponse, Message: err.Error(), Err: err}
}

func transportFailure(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
}

func httpError(code int) *Error {
	msg := statusText(code)
	return &Error{Kind: KindHTTP, StatusCode: code, Message: msg}
}
