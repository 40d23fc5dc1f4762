package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "malformed request", KindMalformedRequest.String())
	assert.Equal(t, "malformed response", KindMalformedResponse.String())
	assert.Equal(t, "http error", KindHTTP.String())
	assert.Equal(t, "transport failure", KindTransport.String())
	assert.Equal(t, "kind(0)", Kind(0).String())
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"http", httpError(404), "comment api: http error 404: Not Found"},
		{"transport", transportFailure(errors.New("dial tcp: refused")), "comment api: transport failure: dial tcp: refused"},
		{"malformed response", malformedResponse(errors.New("bad json")), "comment api: malformed response: bad json"},
		{"empty message", &Error{Kind: KindMalformedRequest}, "comment api: malformed request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("listing: %w", httpError(429))

	assert.ErrorIs(t, err, ErrHTTP)
	assert.ErrorIs(t, err, &Error{Kind: KindHTTP, StatusCode: 429})
	assert.NotErrorIs(t, err, &Error{Kind: KindHTTP, StatusCode: 500})
	assert.NotErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrMalformedRequest)
}

func TestSentinelsAreValues(t *testing.T) {
	var e *Error
	assert.False(t, errors.As(ErrHTTP, &e), "sentinel must not expose a mutable *Error")
	assert.Equal(t, "comment api: http error", ErrHTTP.Error())

	err := httpError(404)
	assert.ErrorIs(t, err, ErrHTTP)
	assert.ErrorIs(t, err, &Error{Kind: KindHTTP})
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := malformedRequest(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestStatusCode(t *testing.T) {
	code, ok := StatusCode(fmt.Errorf("wrapped: %w", httpError(503)))
	assert.True(t, ok)
	assert.Equal(t, 503, code)

	_, ok = StatusCode(transportFailure(errors.New("x")))
	assert.False(t, ok)

	_, ok = StatusCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestStatusBuckets(t *testing.T) {
	assert.True(t, httpError(400).IsClientError())
	assert.False(t, httpError(400).IsServerError())
	assert.True(t, httpError(503).IsServerError())
	assert.False(t, transportFailure(errors.New("x")).IsServerError())
}
