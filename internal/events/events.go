package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates record lifecycle notifications.
type EventType string

const (
	EventSummaryCreated EventType = "summary.created"
	EventSummaryDeleted EventType = "summary.deleted"
)

// Event describes a change to a summary record. Publishing is best-effort;
// the request that triggered it never fails on a publish error.
type Event struct {
	Type       EventType `json:"type"`
	SummaryID  uuid.UUID `json:"summary_id"`
	Filename   string    `json:"filename,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits lifecycle events for downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
