package usecases_port

import (
	"context"

	"homenest/internal/core/browse"
)

type BrowsePropertiesUseCasePort interface {
	Execute(ctx context.Context, state browse.State) (*browse.Result, error)
}
