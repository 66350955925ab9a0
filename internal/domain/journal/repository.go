// internal/domain/journal/repository.go
package journal

import "context"

// Repository stores delivery attempts. Nothing reads the journal back to
// restore tracker state.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
}

// Discard is the Repository used when no journal storage is configured.
type Discard struct{}

func (Discard) Append(context.Context, *Entry) error { return nil }
