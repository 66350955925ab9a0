// internal/infra/practicum/errors.go
package practicum

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("endpoint %s is unreachable: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError means the API answered with a non-200 code.
// Headers never carry the raw token.
type HTTPStatusError struct {
	Endpoint   string
	Headers    http.Header
	Params     url.Values
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("endpoint %s with headers %v and params %v returned status %d",
		e.Endpoint, map[string][]string(e.Headers), e.Params.Encode(), e.StatusCode)
}

// DecodeError means a 200 response body was not valid JSON.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response from %s is not valid JSON: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Kind returns a short label for poll errors, used as a log field.
func Kind(err error) string {
	var (
		transportErr *TransportError
		statusErr    *HTTPStatusError
		decodeErr    *DecodeError
	)
	switch {
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &statusErr):
		return "http_status"
	case errors.As(err, &decodeErr):
		return "decode"
	default:
		return ""
	}
}

func redact(h http.Header) http.Header {
	out := h.Clone()
	if out.Get("Authorization") != "" {
		out.Set("Authorization", "OAuth ***")
	}
	return out
}
