package usecases_port

import (
	"context"

	"homenest/internal/core/domain"
)

type GetPropertyDetailsUseCasePort interface {
	Execute(ctx context.Context, propertyID string) (*domain.PropertyDetails, error)
}
