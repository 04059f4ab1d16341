package usecase

import (
	"context"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type GetMyPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetMyPropertiesUseCase(catalog port.PropertyCatalogPort) *GetMyPropertiesUseCase {
	return &GetMyPropertiesUseCase{catalog: catalog}
}

func (uc *GetMyPropertiesUseCase) Execute(ctx context.Context, user domain.User) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetMyProperties",
		"user_email": user.Email,
	})

	properties, err := uc.catalog.GetPropertiesByOwner(ctx, user.Email)
	if err != nil {
		ucLogger.Error("Failed to load own properties", err, nil)
		return nil, err
	}
	if properties == nil {
		properties = []domain.Property{}
	}

	ucLogger.Info("Own properties loaded", port.Fields{"count": len(properties)})
	return properties, nil
}
