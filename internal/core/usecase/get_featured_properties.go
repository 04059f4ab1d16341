package usecase

import (
	"context"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type GetFeaturedPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetFeaturedPropertiesUseCase(catalog port.PropertyCatalogPort) *GetFeaturedPropertiesUseCase {
	return &GetFeaturedPropertiesUseCase{catalog: catalog}
}

func (uc *GetFeaturedPropertiesUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetFeaturedProperties"})

	properties, err := uc.catalog.GetFeaturedProperties(ctx)
	if err != nil {
		ucLogger.Error("Featured fetch failed, home page shows no listings", err, nil)
		return []domain.Property{}, nil
	}
	if properties == nil {
		properties = []domain.Property{}
	}

	ucLogger.Debug("Featured properties loaded", port.Fields{"count": len(properties)})
	return properties, nil
}
