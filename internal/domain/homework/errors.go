// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse is the base of every MalformedResponseError.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrEmptyCollection is returned when the homeworks field is present but null.
	ErrEmptyCollection = errors.New("homeworks field is null")
	// ErrUndocumentedStatus is returned when a record has no status.
	ErrUndocumentedStatus = errors.New("homework status is missing")
	// ErrUndocumentedName is returned when a record has no homework name.
	ErrUndocumentedName = errors.New("homework name is missing")
	// ErrUnknownVerdict is the base of every UnknownVerdictError.
	ErrUnknownVerdict = errors.New("unknown homework status")
)

// MalformedResponseError reports a missing or mistyped field in an API response.
// Field is empty when the response itself has the wrong shape.
type MalformedResponseError struct {
	Field  string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed response: %s", e.Reason)
	}
	return fmt.Sprintf("malformed response: field %q %s", e.Field, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return ErrMalformedResponse }

// UnknownVerdictError means the API reported a status the verdict table does not know.
type UnknownVerdictError struct {
	Status string
}

func (e *UnknownVerdictError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}

func (e *UnknownVerdictError) Unwrap() error { return ErrUnknownVerdict }

// Kind returns a short label for validation errors, used as a log field.
// It returns an empty string for errors outside this package.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrEmptyCollection):
		return "empty_collection"
	case errors.Is(err, ErrUndocumentedStatus):
		return "undocumented_status"
	case errors.Is(err, ErrUndocumentedName):
		return "undocumented_name"
	case errors.Is(err, ErrUnknownVerdict):
		return "unknown_verdict"
	default:
		return ""
	}
}
