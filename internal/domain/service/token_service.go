package service

import (
	"time"

	"localfarm/internal/domain/entity"
)

// TokenClaims is the validated content of an access token.
type TokenClaims struct {
	UserID int64
	Role   entity.Role
}

// TokenService defines the interface for issuing and validating session tokens.
type TokenService interface {
	// GenerateTokens creates an access token and a refresh token for a user.
	GenerateTokens(userID int64, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
