package models

import "time"

// Activity event types recorded for project mutations.
const (
	EventProjectCreated = "PROJECT_CREATED"
	EventProjectUpdated = "PROJECT_UPDATED"
	EventProjectDeleted = "PROJECT_DELETED"
)

// ActivityEvent is a single audit log entry.
type ActivityEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"` // PROJECT_CREATED | PROJECT_UPDATED | PROJECT_DELETED
	Actor       string    `json:"actor"`
	ProjectID   int64     `json:"project_id,omitempty"`
	Description string    `json:"description"`
}
