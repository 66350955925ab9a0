// internal/domain/homework/status.go
package homework

import "fmt"

// ParseStatus extracts the name and status of one homework record and builds
// the chat message for it.
func ParseStatus(record any) (Homework, string, error) {
	obj, ok := record.(map[string]any)
	if !ok {
		return Homework{}, "", &MalformedResponseError{Field: FieldHomeworks, Reason: fmt.Sprintf("contains a non-object record (got %T)", record)}
	}

	rawStatus := obj[FieldStatus]
	if rawStatus == nil {
		return Homework{}, "", ErrUndocumentedStatus
	}
	status, ok := rawStatus.(string)
	if !ok {
		return Homework{}, "", &MalformedResponseError{Field: FieldStatus, Reason: fmt.Sprintf("is not a string (got %T)", rawStatus)}
	}

	rawName := obj[FieldName]
	if rawName == nil {
		return Homework{}, "", ErrUndocumentedName
	}
	name, ok := rawName.(string)
	if !ok {
		return Homework{}, "", &MalformedResponseError{Field: FieldName, Reason: fmt.Sprintf("is not a string (got %T)", rawName)}
	}

	hw := Homework{Name: name, Status: Status(status)}
	verdict, ok := Verdict(hw.Status)
	if !ok {
		return Homework{}, "", &UnknownVerdictError{Status: status}
	}
	return hw, fmt.Sprintf("Status of \"%s\" changed. %s", hw.Name, verdict), nil
}
