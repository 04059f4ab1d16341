package port

import (
	"context"

	"homenest/internal/core/domain"
)

// ReviewServicePort is the review side of the remote listing service.
type ReviewServicePort interface {
	GetPropertyReviews(ctx context.Context, propertyID string) ([]domain.Review, error)
	GetReviewsByReviewer(ctx context.Context, email string) ([]domain.Review, error)
	// CreateReview returns insertedId.
	CreateReview(ctx context.Context, review domain.Review) (string, error)
}
