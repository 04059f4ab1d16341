package rabbitmq

import (
	"time"

	"homenest/internal/core/domain"
)

// ActivityEventMessage is the wire form of domain.ActivityEvent.
type ActivityEventMessage struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	PropertyID string `json:"property_id"`
	ActorEmail string `json:"actor_email"`
	OccurredAt string `json:"occurred_at"`
}

func activityMessageFrom(e domain.ActivityEvent) ActivityEventMessage {
	return ActivityEventMessage{
		EventID:    e.ID,
		Type:       string(e.Type),
		PropertyID: e.PropertyID,
		ActorEmail: e.ActorEmail,
		OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
}
