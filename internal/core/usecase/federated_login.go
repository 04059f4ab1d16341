package usecase

import (
	"context"
	"time"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

// FederatedLoginUseCase signs a user in with a Google ID token.
type FederatedLoginUseCase struct {
	identity   port.IdentityProviderPort
	tokenSvc   port.SessionTokenPort
	sessionTTL time.Duration
}

func NewFederatedLoginUseCase(identity port.IdentityProviderPort, tokenSvc port.SessionTokenPort, sessionTTL time.Duration) *FederatedLoginUseCase {
	return &FederatedLoginUseCase{identity: identity, tokenSvc: tokenSvc, sessionTTL: sessionTTL}
}

func (uc *FederatedLoginUseCase) Execute(ctx context.Context, idToken, requestURI string) (*domain.Session, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "FederatedLogin"})
	ucLogger.Info("Use case started", nil)

	if idToken == "" {
		ucLogger.Warn("Federated login without a token", nil)
		return nil, domain.ErrInvalidCredentials
	}

	user, err := uc.identity.SignInWithGoogle(ctx, idToken, requestURI)
	if err != nil {
		ucLogger.Warn("Identity provider refused federated login", port.Fields{"error": err.Error()})
		return nil, err
	}

	return issueSession(ctx, ucLogger, uc.tokenSvc, *user, uc.sessionTTL)
}
