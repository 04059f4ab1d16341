package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "homenest-web"

// SessionTokenService signs and verifies HS256 session tokens.
type SessionTokenService struct {
	signingKey []byte
	now        func() time.Time
}

func NewSessionTokenService(signingKey string) (*SessionTokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("session signing key cannot be empty")
	}
	return &SessionTokenService{signingKey: []byte(signingKey), now: time.Now}, nil
}

type sessionClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

func (s *SessionTokenService) GenerateToken(ctx context.Context, user domain.User, ttl time.Duration) (string, error) {
	serviceLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SessionTokenService",
		"method":    "GenerateToken",
		"uid":       user.UID,
	})

	if user.UID == "" {
		return "", fmt.Errorf("cannot issue a session without a user id")
	}

	now := s.now()
	claims := &sessionClaims{
		Email:    user.Email,
		Name:     user.DisplayName,
		PhotoURL: user.PhotoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		serviceLogger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	serviceLogger.Debug("Session token issued", port.Fields{"ttl": ttl.String()})
	return signed, nil
}

func (s *SessionTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	serviceLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SessionTokenService",
		"method":    "ValidateToken",
	})

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			alg := token.Header["alg"]
			serviceLogger.Warn("Unexpected signing method detected", port.Fields{"algorithm": alg})
			return nil, fmt.Errorf("unexpected signing method: %v", alg)
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			serviceLogger.Debug("Session token has expired", nil)
		} else {
			serviceLogger.Warn("Invalid session token", port.Fields{"error": err.Error()})
		}
		return nil, domain.ErrSessionInvalid
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, domain.ErrSessionInvalid
	}

	return &domain.User{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		PhotoURL:    claims.PhotoURL,
	}, nil
}
