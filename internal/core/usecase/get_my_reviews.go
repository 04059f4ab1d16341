package usecase

import (
	"context"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type GetMyReviewsUseCase struct {
	reviews port.ReviewServicePort
}

func NewGetMyReviewsUseCase(reviews port.ReviewServicePort) *GetMyReviewsUseCase {
	return &GetMyReviewsUseCase{reviews: reviews}
}

func (uc *GetMyReviewsUseCase) Execute(ctx context.Context, user domain.User) ([]domain.Review, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetMyReviews",
		"user_email": user.Email,
	})

	reviews, err := uc.reviews.GetReviewsByReviewer(ctx, user.Email)
	if err != nil {
		ucLogger.Error("Failed to load own reviews", err, nil)
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	ucLogger.Info("Own reviews loaded", port.Fields{"count": len(reviews)})
	return reviews, nil
}
