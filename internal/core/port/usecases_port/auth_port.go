package usecases_port

import (
	"context"

	"homenest/internal/core/domain"
)

type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, reg domain.Registration) (*domain.Session, error)
}

type LoginUserUseCasePort interface {
	Execute(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
}

type FederatedLoginUseCasePort interface {
	Execute(ctx context.Context, idToken, requestURI string) (*domain.Session, error)
}

type ValidateSessionUseCasePort interface {
	Execute(ctx context.Context, token string) (*domain.User, error)
}
