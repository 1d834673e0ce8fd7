package domain

import "time"

// LogEntry is an append-only history record attached to a task. Entries are
// immutable once created; the client only ever reads them.
type LogEntry struct {
	ID          string
	Action      string
	Description string
	OldValue    map[string]any
	NewValue    map[string]any
	User        *UserSummary
	CreatedAt   time.Time
}
