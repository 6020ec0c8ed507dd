package service

import (
	"time"

	"sapphire/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID   uuid.UUID
	Username string
	Role     entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken signs a token for the user that expires AccessTokenTTL after issuedAt.
	GenerateAccessToken(user *entity.User, issuedAt time.Time) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, algorithm and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
