package port

import (
	"context"
	"time"

	"homenest/internal/core/domain"
)

type SessionTokenPort interface {
	GenerateToken(ctx context.Context, user domain.User, ttl time.Duration) (string, error)
	// ValidateToken returns domain.ErrSessionInvalid for any unusable token.
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}
