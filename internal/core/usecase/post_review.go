package usecase

import (
	"context"
	"fmt"
	"strings"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type PostReviewUseCase struct {
	catalog   port.PropertyCatalogPort
	reviews   port.ReviewServicePort
	publisher port.ActivityPublisherPort
}

func NewPostReviewUseCase(catalog port.PropertyCatalogPort, reviews port.ReviewServicePort, publisher port.ActivityPublisherPort) *PostReviewUseCase {
	return &PostReviewUseCase{catalog: catalog, reviews: reviews, publisher: publisher}
}

// Execute copies the property name onto the review so reviewer pages need no extra lookup.
func (uc *PostReviewUseCase) Execute(ctx context.Context, user domain.User, in domain.ReviewInput) (string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "PostReview",
		"property_id": in.PropertyID,
		"user_email":  user.Email,
	})
	ucLogger.Info("Use case started", nil)

	if err := in.Validate(); err != nil {
		ucLogger.Warn("Review input rejected", port.Fields{"reason": err.Error()})
		return "", err
	}

	property, err := uc.catalog.GetProperty(ctx, in.PropertyID)
	if err != nil {
		ucLogger.Error("Failed to load reviewed property", err, nil)
		return "", err
	}

	id, err := uc.reviews.CreateReview(ctx, domain.Review{
		PropertyID:    property.ID,
		PropertyName:  property.PropertyName,
		ReviewerName:  user.Name(),
		ReviewerEmail: user.Email,
		ReviewerPhoto: user.PhotoURL,
		Rating:        in.Rating,
		ReviewText:    strings.TrimSpace(in.ReviewText),
	})
	if err != nil {
		ucLogger.Error("Listing service failed to create review", err, nil)
		return "", err
	}
	if id == "" {
		err := fmt.Errorf("listing service did not return insertedId")
		ucLogger.Error("Create review was not acknowledged", err, nil)
		return "", err
	}

	announce(ctx, uc.publisher, domain.ActivityReviewCreated, property.ID, user)
	ucLogger.Info("Use case finished successfully", port.Fields{"review_id": id})
	return id, nil
}
