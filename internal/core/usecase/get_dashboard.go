package usecase

import (
	"context"
	"math"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type GetDashboardUseCase struct {
	catalog port.PropertyCatalogPort
	reviews port.ReviewServicePort
}

func NewGetDashboardUseCase(catalog port.PropertyCatalogPort, reviews port.ReviewServicePort) *GetDashboardUseCase {
	return &GetDashboardUseCase{catalog: catalog, reviews: reviews}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, user domain.User) (*domain.Dashboard, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetDashboard",
		"user_email": user.Email,
	})

	properties, err := uc.catalog.GetPropertiesByOwner(ctx, user.Email)
	if err != nil {
		ucLogger.Error("Failed to load own properties", err, nil)
		return nil, err
	}

	reviews, err := uc.reviews.GetReviewsByReviewer(ctx, user.Email)
	if err != nil {
		ucLogger.Error("Failed to load own reviews", err, nil)
		return nil, err
	}

	dash := &domain.Dashboard{
		TotalProperties:      len(properties),
		PropertiesByCategory: make(map[string]int, len(domain.Categories)),
		TotalReviews:         len(reviews),
	}
	for _, c := range domain.Categories {
		dash.PropertiesByCategory[c] = 0
	}

	var sum float64
	for _, p := range properties {
		dash.PropertiesByCategory[p.Category]++
		sum += p.Price
	}
	if len(properties) > 0 {
		dash.AveragePrice = math.Round(sum/float64(len(properties))*100) / 100
	}

	ucLogger.Info("Dashboard assembled", port.Fields{
		"properties": dash.TotalProperties,
		"reviews":    dash.TotalReviews,
	})
	return dash, nil
}
