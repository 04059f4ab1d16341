package usecase

import (
	"context"
	"time"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"

	"github.com/google/uuid"
)

// announce publishes an activity event. A failed publish never fails the user action.
func announce(ctx context.Context, publisher port.ActivityPublisherPort, kind domain.ActivityType, propertyID string, actor domain.User) {
	if publisher == nil {
		return
	}
	event := domain.ActivityEvent{
		ID:         uuid.New().String(),
		Type:       kind,
		PropertyID: propertyID,
		ActorEmail: actor.Email,
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.PublishActivity(ctx, event); err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Failed to publish activity event", port.Fields{
			"event_type":  string(kind),
			"property_id": propertyID,
			"error":       err.Error(),
		})
	}
}
