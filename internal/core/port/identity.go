package port

import (
	"context"

	"homenest/internal/core/domain"
)

// IdentityProviderPort delegates account management to the federated identity provider.
type IdentityProviderPort interface {
	// SignUp creates the account and stores name and photo on its profile.
	SignUp(ctx context.Context, reg domain.Registration) (*domain.User, error)
	SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.User, error)
	// SignInWithGoogle exchanges a Google ID token; requestURI is the page the token was issued for.
	SignInWithGoogle(ctx context.Context, idToken, requestURI string) (*domain.User, error)
}
