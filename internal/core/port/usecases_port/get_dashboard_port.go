package usecases_port

import (
	"context"

	"homenest/internal/core/domain"
)

type GetDashboardUseCasePort interface {
	Execute(ctx context.Context, user domain.User) (*domain.Dashboard, error)
}
