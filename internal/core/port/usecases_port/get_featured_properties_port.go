package usecases_port

import (
	"context"

	"homenest/internal/core/domain"
)

type GetFeaturedPropertiesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Property, error)
}
