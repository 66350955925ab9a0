// internal/domain/homework/tracker.go
package homework

// Tracker remembers the last status a notification was built for.
// The zero value knows no status, so the first observation always notifies.
type Tracker struct {
	lastStatus Status
	known      bool
}

// ShouldNotify reports whether status differs from the last recorded one.
func (t *Tracker) ShouldNotify(status Status) bool {
	return !t.known || t.lastStatus != status
}

// Record stores status as the last notified one. It is called after every
// notification attempt, delivered or not.
func (t *Tracker) Record(status Status) {
	t.lastStatus = status
	t.known = true
}

// LastStatus returns the recorded status, if any.
func (t *Tracker) LastStatus() (Status, bool) {
	return t.lastStatus, t.known
}
