// internal/domain/homework/homework.go
package homework

// Status is a review status key reported by the Practicum API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Response field names.
const (
	FieldHomeworks   = "homeworks"
	FieldCurrentDate = "current_date"
	FieldName        = "homework_name"
	FieldStatus      = "status"
)

// Homework is a single submitted work item. It only lives for one poll iteration.
type Homework struct {
	Name   string
	Status Status
}

// verdicts maps every recognised status to the sentence sent to the chat.
var verdicts = map[Status]string{
	StatusApproved:  "The work has been reviewed: the reviewer liked everything. Hooray!",
	StatusReviewing: "The work has been taken for review by the reviewer.",
	StatusRejected:  "The work has been reviewed: the reviewer has comments.",
}

// Verdict returns the fixed sentence for a status key.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}
