package domain

import "time"

// ActivityType doubles as the routing key of the published event.
type ActivityType string

const (
	ActivityPropertyCreated ActivityType = "property.created"
	ActivityPropertyUpdated ActivityType = "property.updated"
	ActivityPropertyDeleted ActivityType = "property.deleted"
	ActivityReviewCreated   ActivityType = "review.created"
)

// ActivityEvent records a successful mutation made by a user.
type ActivityEvent struct {
	ID         string
	Type       ActivityType
	PropertyID string
	ActorEmail string
	OccurredAt time.Time
}
