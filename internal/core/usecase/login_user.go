package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type LoginUserUseCase struct {
	identity   port.IdentityProviderPort
	tokenSvc   port.SessionTokenPort
	sessionTTL time.Duration
}

func NewLoginUserUseCase(identity port.IdentityProviderPort, tokenSvc port.SessionTokenPort, sessionTTL time.Duration) *LoginUserUseCase {
	return &LoginUserUseCase{identity: identity, tokenSvc: tokenSvc, sessionTTL: sessionTTL}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "LoginUser",
		"email":    creds.Email,
	})
	ucLogger.Info("Use case started: attempting to login user", nil)

	if creds.Email == "" || creds.Password == "" {
		ucLogger.Warn("Login failed: missing credentials", nil)
		return nil, domain.ErrInvalidCredentials
	}

	user, err := uc.identity.SignInWithPassword(ctx, creds)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			ucLogger.Warn("Login failed: invalid credentials", nil)
		} else {
			ucLogger.Error("Identity provider failed during login", err, nil)
		}
		return nil, err
	}

	return issueSession(ctx, ucLogger, uc.tokenSvc, *user, uc.sessionTTL)
}
