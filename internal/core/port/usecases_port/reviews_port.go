package usecases_port

import (
	"context"

	"homenest/internal/core/domain"
)

type PostReviewUseCasePort interface {
	Execute(ctx context.Context, user domain.User, in domain.ReviewInput) (string, error)
}

type GetMyReviewsUseCasePort interface {
	Execute(ctx context.Context, user domain.User) ([]domain.Review, error)
}
