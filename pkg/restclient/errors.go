package restclient

import (
	"fmt"

	"github.com/go-restpoint/restpoint/internal/common/apperrors"
)

// Root errors for request processing. Derived errors match these via
// errors.Is.
var (
	// ErrRequest is the root of all request-side failures.
	ErrRequest = apperrors.New("request failed")

	// ErrBodyEncode indicates the request body could not be serialized for
	// the effective content type.
	ErrBodyEncode = ErrRequest.New("cannot encode request body")
)

// HTTPError is returned when a response arrives with a status code outside
// [200, 400). It carries the raw response so callers can inspect the status
// and body themselves. Nothing is retried at this layer.
type HTTPError struct {
	Response *Response
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Response.StatusCode)
}

// StatusCode returns the status code of the failed response.
func (e *HTTPError) StatusCode() int {
	return e.Response.StatusCode
}

// TransportError is returned when the transport itself fails before a
// response is received (connection refused, timeout, canceled context).
// The underlying cause is available via errors.Unwrap.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Cause.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
