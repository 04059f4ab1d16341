package usecases_port

import (
	"context"

	"homenest/internal/core/domain"
)

type AddPropertyUseCasePort interface {
	Execute(ctx context.Context, user domain.User, in domain.PropertyInput) (string, error)
}

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, user domain.User, propertyID string, in domain.PropertyInput) error
}

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, user domain.User, propertyID string) error
}

type GetMyPropertiesUseCasePort interface {
	Execute(ctx context.Context, user domain.User) ([]domain.Property, error)
}
