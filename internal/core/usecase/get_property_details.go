package usecase

import (
	"context"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	catalog port.PropertyCatalogPort
	reviews port.ReviewServicePort
}

func NewGetPropertyDetailsUseCase(catalog port.PropertyCatalogPort, reviews port.ReviewServicePort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{catalog: catalog, reviews: reviews}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID string) (*domain.PropertyDetails, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	property, err := uc.catalog.GetProperty(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to load property", err, nil)
		return nil, err
	}

	reviews, err := uc.reviews.GetPropertyReviews(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to load reviews, showing none", err, nil)
		reviews = nil
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"reviews_count": len(reviews)})
	return &domain.PropertyDetails{
		Property: *property,
		Reviews:  reviews,
		Summary:  domain.Summarize(reviews),
	}, nil
}
