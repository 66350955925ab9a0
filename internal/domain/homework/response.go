// internal/domain/homework/response.go
package homework

import (
	"encoding/json"
	"fmt"
)

// Response is an API payload that passed CheckResponse.
type Response struct {
	Homeworks   []any
	CurrentDate int64 // 0 when the API sent a non-numeric value
}

// CheckResponse validates a decoded API payload. The homeworks list may be empty.
func CheckResponse(payload any) (Response, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return Response{}, &MalformedResponseError{Reason: fmt.Sprintf("expected an object, got %T", payload)}
	}

	rawHomeworks, ok := obj[FieldHomeworks]
	if !ok {
		return Response{}, &MalformedResponseError{Field: FieldHomeworks, Reason: "is missing"}
	}
	rawDate, ok := obj[FieldCurrentDate]
	if !ok {
		return Response{}, &MalformedResponseError{Field: FieldCurrentDate, Reason: "is missing"}
	}

	if rawHomeworks == nil {
		return Response{}, ErrEmptyCollection
	}
	homeworks, ok := rawHomeworks.([]any)
	if !ok {
		return Response{}, &MalformedResponseError{Field: FieldHomeworks, Reason: fmt.Sprintf("is not a list (got %T)", rawHomeworks)}
	}

	return Response{Homeworks: homeworks, CurrentDate: toUnix(rawDate)}, nil
}

func toUnix(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	default:
		return 0
	}
}
