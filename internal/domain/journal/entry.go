// internal/domain/journal/entry.go
package journal

import (
	"database/sql"
	"time"
)

// Kind says why a message was sent to the chat.
type Kind string

const (
	KindStartup      Kind = "STARTUP"
	KindStatusChange Kind = "STATUS_CHANGE"
	KindFailure      Kind = "FAILURE"
)

// Entry is one delivery attempt. Corresponds to the 'delivery_journal' table.
type Entry struct {
	ID        int64
	Kind      Kind
	ChatID    int64
	Message   string
	Delivered bool
	Error     sql.NullString // Send error when Delivered is false
	CreatedAt time.Time
}
