package port

import (
	"context"

	"homenest/internal/core/domain"
)

// ActivityPublisherPort announces successful mutations to other systems.
type ActivityPublisherPort interface {
	PublishActivity(ctx context.Context, event domain.ActivityEvent) error
}
