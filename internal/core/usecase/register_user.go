package usecase

import (
	"context"
	"strings"
	"time"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type RegisterUserUseCase struct {
	identity   port.IdentityProviderPort
	tokenSvc   port.SessionTokenPort
	sessionTTL time.Duration
}

func NewRegisterUserUseCase(identity port.IdentityProviderPort, tokenSvc port.SessionTokenPort, sessionTTL time.Duration) *RegisterUserUseCase {
	return &RegisterUserUseCase{identity: identity, tokenSvc: tokenSvc, sessionTTL: sessionTTL}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Name = strings.TrimSpace(reg.Name)

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "RegisterUser",
		"email":    reg.Email,
	})
	ucLogger.Info("Use case started: registering user", nil)

	if err := reg.Validate(); err != nil {
		ucLogger.Warn("Registration rejected", port.Fields{"reason": err.Error()})
		return nil, err
	}

	user, err := uc.identity.SignUp(ctx, reg)
	if err != nil {
		ucLogger.Warn("Identity provider refused sign-up", port.Fields{"error": err.Error()})
		return nil, err
	}

	return issueSession(ctx, ucLogger, uc.tokenSvc, *user, uc.sessionTTL)
}

// issueSession signs a session token for an authenticated user.
func issueSession(ctx context.Context, logger port.LoggerPort, tokenSvc port.SessionTokenPort, user domain.User, ttl time.Duration) (*domain.Session, error) {
	token, err := tokenSvc.GenerateToken(ctx, user, ttl)
	if err != nil {
		logger.Error("Failed to generate session token", err, nil)
		return nil, err
	}
	logger.Info("Use case finished: session issued", port.Fields{"uid": user.UID})
	return &domain.Session{User: user, Token: token}, nil
}
