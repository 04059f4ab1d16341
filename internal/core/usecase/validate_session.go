package usecase

import (
	"context"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type ValidateSessionUseCase struct {
	tokenSvc port.SessionTokenPort
}

func NewValidateSessionUseCase(tokenSvc port.SessionTokenPort) *ValidateSessionUseCase {
	return &ValidateSessionUseCase{tokenSvc: tokenSvc}
}

func (uc *ValidateSessionUseCase) Execute(ctx context.Context, token string) (*domain.User, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ValidateSession"})

	if token == "" {
		return nil, domain.ErrSessionInvalid
	}

	user, err := uc.tokenSvc.ValidateToken(ctx, token)
	if err != nil {
		ucLogger.Debug("Session token rejected", port.Fields{"error": err.Error()})
		return nil, domain.ErrSessionInvalid
	}

	ucLogger.Debug("Session validated", port.Fields{"uid": user.UID})
	return user, nil
}
